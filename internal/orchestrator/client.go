package orchestrator

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dreamware/oblivsort/internal/wire"
)

// StoreClient is everything the Orchestrator needs from an Oblivious
// Store. An HTTP-backed implementation (HTTPStoreClient) talks to
// cmd/obliviousstored; tests may supply an in-process implementation that
// wraps a *store.Store directly, skipping the network entirely.
type StoreClient interface {
	Initialize(ctx context.Context, cells [][]byte) (int, error)
	UseHashArrayForSorting(ctx context.Context) (int, error)
	GetPair(ctx context.Context, i, j int) ([]byte, []byte, error)
	WritePair(ctx context.Context, i, j int, ci, cj []byte) error
	GetMate(ctx context.Context, size int, seed int64, i int) (int, error)
	GetFinalArray(ctx context.Context) ([][]byte, int64, int64, error)
}

// HTTPStoreClient drives the wire protocol in internal/wire/doc.go against
// a Store exposed over HTTP by cmd/obliviousstored.
type HTTPStoreClient struct {
	baseURL string
}

// NewHTTPStoreClient builds a client bound to the Store reachable at
// baseURL (e.g. "http://localhost:8090").
func NewHTTPStoreClient(baseURL string) *HTTPStoreClient {
	return &HTTPStoreClient{baseURL: baseURL}
}

func (c *HTTPStoreClient) url(path string) string {
	return c.baseURL + path
}

// Initialize implements StoreClient.
func (c *HTTPStoreClient) Initialize(ctx context.Context, cells [][]byte) (int, error) {
	var resp wire.InitializeResponse
	req := wire.InitializeRequest{Cells: cells}
	if err := wire.PostJSON(ctx, c.url("/sort/initialize"), req, &resp); err != nil {
		return 0, err
	}
	return resp.ArraySize, nil
}

// UseHashArrayForSorting implements StoreClient.
func (c *HTTPStoreClient) UseHashArrayForSorting(ctx context.Context) (int, error) {
	var resp wire.UseHashArrayResponse
	if err := wire.PostJSON(ctx, c.url("/sort/use-hash-array"), struct{}{}, &resp); err != nil {
		return 0, err
	}
	return resp.ArraySize, nil
}

// GetPair implements StoreClient.
func (c *HTTPStoreClient) GetPair(ctx context.Context, i, j int) ([]byte, []byte, error) {
	q := url.Values{}
	q.Set("a", fmt.Sprintf("%d", i))
	q.Set("b", fmt.Sprintf("%d", j))

	var resp wire.GetPairResponse
	if err := wire.GetJSON(ctx, c.url("/sort/pair?"+q.Encode()), &resp); err != nil {
		return nil, nil, err
	}
	return resp.EncryptedA, resp.EncryptedB, nil
}

// WritePair implements StoreClient.
func (c *HTTPStoreClient) WritePair(ctx context.Context, i, j int, ci, cj []byte) error {
	req := wire.WritePairRequest{IndexA: i, IndexB: j, NewEncryptedA: ci, NewEncryptedB: cj}
	var resp wire.WritePairResponse
	return wire.PostJSON(ctx, c.url("/sort/pair"), req, &resp)
}

// GetMate implements StoreClient.
func (c *HTTPStoreClient) GetMate(ctx context.Context, size int, seed int64, i int) (int, error) {
	q := url.Values{}
	q.Set("size", fmt.Sprintf("%d", size))
	q.Set("seed", fmt.Sprintf("%d", seed))
	q.Set("index", fmt.Sprintf("%d", i))

	var resp wire.GetMateResponse
	if err := wire.GetJSON(ctx, c.url("/sort/mate?"+q.Encode()), &resp); err != nil {
		return 0, err
	}
	return resp.Mate, nil
}

// GetFinalArray implements StoreClient.
func (c *HTTPStoreClient) GetFinalArray(ctx context.Context) ([][]byte, int64, int64, error) {
	var resp wire.GetFinalArrayResponse
	if err := wire.GetJSON(ctx, c.url("/sort/final"), &resp); err != nil {
		return nil, 0, 0, err
	}
	return resp.EncryptedArray, resp.TotalComparisons, resp.TotalWrites, nil
}
