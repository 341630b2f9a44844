// Command obliviousstored runs the Oblivious Store as a standalone HTTP
// service: it holds an encrypted array and answers GetPair/WritePair/
// GetMate/GetFinalArray for exactly one Sort Orchestrator at a time.
//
// Configuration (environment):
//   - STORE_LISTEN: Local listen address (default: ":8090")
//   - STORE_TRACE_CAPACITY: Recent-ops trace size (default: 4096)
//
// Exit codes:
//   - 0: Normal shutdown via signal
//   - 1: Failed to start HTTP server
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dreamware/oblivsort/internal/store"
	"github.com/dreamware/oblivsort/internal/storeserver"
)

func main() {
	listen := getenv("STORE_LISTEN", ":8090")
	traceCapacity := getenvInt("STORE_TRACE_CAPACITY", 4096)

	s := store.New(traceCapacity)
	srv := storeserver.New(s)

	httpSrv := &http.Server{
		Addr:              listen,
		Handler:           srv.NewMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("obliviousstored listening on %s", listen)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("obliviousstored stopped")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("obliviousstored: invalid %s=%q, using default %d", k, v, def)
		return def
	}
	return n
}
