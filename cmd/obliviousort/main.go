// Command obliviousort is the Sort Orchestrator's CLI entrypoint: it reads
// a list of non-negative 32-bit integers, drives a full oblivious sort
// against a running obliviousstored, and prints the sorted result plus the
// Store's final counters.
//
// Usage:
//
//	obliviousort --store http://localhost:8090 --key keyfile.b64 1 5 3 2 4
//	echo '[5,3,9,1]' | obliviousort --store http://localhost:8090
//
// If --key is omitted, a fresh key is generated and printed (base64) to
// stderr.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dreamware/oblivsort/internal/cipher"
	"github.com/dreamware/oblivsort/internal/orchestrator"
	"github.com/dreamware/oblivsort/internal/schedule"
)

func main() {
	storeURL := pflag.String("store", "http://localhost:8090", "base URL of the obliviousstored instance")
	keyPath := pflag.String("key", "", "path to a base64-encoded 32-byte key (generated if omitted)")
	fanOut := pflag.IntP("fan-out", "c", orchestrator.DefaultFanOut, "independent random matchings per region compare-exchange")
	verbose := pflag.BoolP("verbose", "v", false, "log each region compare-exchange")
	sentinel := pflag.Uint32("sentinel", math.MaxUint32, "padding value used when the input is not a power of two in length")
	pflag.Parse()

	values, err := readValues(pflag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "obliviousort: %v\n", err)
		os.Exit(1)
	}
	if len(values) == 0 {
		fmt.Fprintln(os.Stderr, "obliviousort: no input values (pass them as arguments or pipe a JSON array on stdin)")
		os.Exit(1)
	}

	key, err := loadOrGenerateKey(*keyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "obliviousort: %v\n", err)
		os.Exit(1)
	}

	adapter, err := cipher.NewSecretboxAdapter(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "obliviousort: %v\n", err)
		os.Exit(1)
	}

	padded, originalLen := schedule.PadToPowerOfTwo(values, *sentinel)

	client := orchestrator.NewHTTPStoreClient(*storeURL)
	cfg := orchestrator.DefaultConfig()
	cfg.FanOut = *fanOut
	cfg.Verbose = *verbose
	o := orchestrator.New(client, adapter, nil, cfg)

	result, err := o.SortValues(context.Background(), padded)
	if err != nil {
		fmt.Fprintf(os.Stderr, "obliviousort: sort failed: %v\n", err)
		os.Exit(1)
	}

	sorted := schedule.Strip(result.Values, originalLen)

	fmt.Println(formatValues(sorted))
	fmt.Fprintf(os.Stderr, "obliviousort: comparisons=%d writes=%d\n", result.Comparisons, result.Writes)
}

func readValues(args []string) ([]uint32, error) {
	if len(args) > 0 {
		return parseValues(args)
	}

	stat, err := os.Stdin.Stat()
	if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
		return nil, nil
	}

	var raw []uint32
	dec := json.NewDecoder(os.Stdin)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode stdin as a JSON array of integers: %w", err)
	}
	return raw, nil
}

func parseValues(args []string) ([]uint32, error) {
	values := make([]uint32, len(args))
	for i, a := range args {
		v, err := strconv.ParseUint(a, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parse %q as a non-negative 32-bit integer: %w", a, err)
		}
		values[i] = uint32(v)
	}
	return values, nil
}

func formatValues(values []uint32) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, " ")
}

func loadOrGenerateKey(path string) ([]byte, error) {
	if path == "" {
		key, err := cipher.GenerateKey()
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(os.Stderr, "obliviousort: generated key (base64): %s\n", base64.StdEncoding.EncodeToString(key))
		return key, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file %q: %w", path, err)
	}
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("decode key file %q: %w", path, err)
	}
	return key, nil
}
