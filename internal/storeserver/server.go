package storeserver

import (
	"encoding/json"
	"net/http"

	"github.com/dreamware/oblivsort/internal/store"
	"github.com/dreamware/oblivsort/internal/wire"
)

// Server wires HTTP handlers to a single Store instance.
type Server struct {
	Store *store.Store
}

// New builds a Server around s.
func New(s *store.Store) *Server {
	return &Server{Store: s}
}

// NewMux builds an http.ServeMux with every Store route registered, plus a
// plain 200-OK /health endpoint. The returned mux is what both
// cmd/obliviousstored and httptest-backed integration tests serve.
func (s *Server) NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/sort/initialize", s.handleInitialize)
	mux.HandleFunc("/sort/use-hash-array", s.handleUseHashArray)
	mux.HandleFunc("/sort/pair", s.handlePair)
	mux.HandleFunc("/sort/mate", s.handleMate)
	mux.HandleFunc("/sort/final", s.handleFinal)
	return mux
}

func (s *Server) handleInitialize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req wire.InitializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		wire.WriteStatusError(w, wire.NewStatusError(wire.CodeInvalidArgument, "bad json: %v", err))
		return
	}

	n, err := s.Store.Initialize(req.Cells)
	if err != nil {
		wire.WriteStatusError(w, err)
		return
	}

	writeJSON(w, wire.InitializeResponse{Success: true, ArraySize: n})
}

func (s *Server) handleUseHashArray(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	n, err := s.Store.UseHashArrayForSorting()
	if err != nil {
		wire.WriteStatusError(w, err)
		return
	}

	writeJSON(w, wire.UseHashArrayResponse{Success: true, ArraySize: n})
}

func (s *Server) handlePair(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGetPair(w, r)
	case http.MethodPost:
		s.handleWritePair(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGetPair(w http.ResponseWriter, r *http.Request) {
	a, err := wire.QueryInt(r.URL.Query(), "a")
	if err != nil {
		wire.WriteStatusError(w, err)
		return
	}
	b, err := wire.QueryInt(r.URL.Query(), "b")
	if err != nil {
		wire.WriteStatusError(w, err)
		return
	}

	ca, cb, err := s.Store.GetPair(a, b)
	if err != nil {
		wire.WriteStatusError(w, err)
		return
	}

	writeJSON(w, wire.GetPairResponse{EncryptedA: ca, EncryptedB: cb})
}

func (s *Server) handleWritePair(w http.ResponseWriter, r *http.Request) {
	var req wire.WritePairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		wire.WriteStatusError(w, wire.NewStatusError(wire.CodeInvalidArgument, "bad json: %v", err))
		return
	}

	if err := s.Store.WritePair(req.IndexA, req.IndexB, req.NewEncryptedA, req.NewEncryptedB); err != nil {
		wire.WriteStatusError(w, err)
		return
	}

	writeJSON(w, wire.WritePairResponse{Success: true})
}

func (s *Server) handleMate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	size, err := wire.QueryInt(r.URL.Query(), "size")
	if err != nil {
		wire.WriteStatusError(w, err)
		return
	}
	seed, err := wire.QueryInt(r.URL.Query(), "seed")
	if err != nil {
		wire.WriteStatusError(w, err)
		return
	}
	index, err := wire.QueryInt(r.URL.Query(), "index")
	if err != nil {
		wire.WriteStatusError(w, err)
		return
	}

	mate, err := s.Store.GetMate(size, int64(seed), index)
	if err != nil {
		wire.WriteStatusError(w, err)
		return
	}

	writeJSON(w, wire.GetMateResponse{Mate: mate})
}

func (s *Server) handleFinal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cells, comparisons, writes := s.Store.GetFinalArray()
	writeJSON(w, wire.GetFinalArrayResponse{
		EncryptedArray:   cells,
		TotalComparisons: comparisons,
		TotalWrites:      writes,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
