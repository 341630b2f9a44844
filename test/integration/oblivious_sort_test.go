// Package integration drives the Sort Orchestrator against a real
// net/http.Server wrapping internal/storeserver, exercising the full wire
// protocol instead of the in-process shortcuts used by the orchestrator's
// own unit tests.
package integration

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/dreamware/oblivsort/internal/cipher"
	"github.com/dreamware/oblivsort/internal/orchestrator"
	"github.com/dreamware/oblivsort/internal/store"
	"github.com/dreamware/oblivsort/internal/storeserver"
)

func newHTTPHarness(t *testing.T, seed int64) (*orchestrator.Orchestrator, *httptest.Server, *store.Store) {
	t.Helper()
	s := store.New(0)
	ts := httptest.NewServer(storeserver.New(s).NewMux())
	t.Cleanup(ts.Close)

	key, err := cipher.GenerateKey()
	require.NoError(t, err)
	adapter, err := cipher.NewSecretboxAdapter(key)
	require.NoError(t, err)

	client := orchestrator.NewHTTPStoreClient(ts.URL)
	o := orchestrator.New(client, adapter, orchestrator.NewDeterministicSeedSource(seed), orchestrator.DefaultConfig())
	return o, ts, s
}

// S1: sorting a power-of-two array over real HTTP preserves the multiset
// and produces an ascending result.
func TestIntegrationSortOverHTTP(t *testing.T) {
	o, _, _ := newHTTPHarness(t, 1)
	values := []uint32{742, 123, 891, 45, 567, 823, 234, 678}

	result, err := o.SortValues(context.Background(), values)
	require.NoError(t, err)
	assert.Equal(t, []uint32{45, 123, 234, 567, 678, 742, 823, 891}, result.Values)
	assert.Positive(t, result.Comparisons)
	assert.Positive(t, result.Writes)
}

// S2: larger arrays still come out sorted when routed through the HTTP
// store, confirming the region schedule and matching oracle behave
// identically whether or not an RPC boundary sits between them.
func TestIntegrationSortLargerArrayOverHTTP(t *testing.T) {
	o, _, _ := newHTTPHarness(t, 7)
	values := make([]uint32, 32)
	for i := range values {
		values[i] = uint32(len(values) - i)
	}

	result, err := o.SortValues(context.Background(), values)
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(result.Values))
}

// S4: the sequence of GetPair/WritePair/GetMate calls the Store observes
// must not depend on the input values, only on the array's length, even
// when every call crosses a real HTTP connection.
func TestIntegrationObliviousnessAcrossDistinctInputsOverHTTP(t *testing.T) {
	oA, _, sA := newHTTPHarness(t, 99)
	oB, _, sB := newHTTPHarness(t, 99)

	ascending := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	descending := []uint32{8, 7, 6, 5, 4, 3, 2, 1}

	_, err := oA.SortValues(context.Background(), ascending)
	require.NoError(t, err)
	_, err = oB.SortValues(context.Background(), descending)
	require.NoError(t, err)

	assert.Equal(t, sA.RecentOps(), sB.RecentOps())
}

// S6: every WritePair call rewrites both cells even when the compared
// values are already sorted within their region, so ciphertext bytes
// change regardless of the logical outcome.
func TestIntegrationWritePairAlwaysRewritesOverHTTP(t *testing.T) {
	_, ts, s := newHTTPHarness(t, 3)

	key, err := cipher.GenerateKey()
	require.NoError(t, err)
	adapter, err := cipher.NewSecretboxAdapter(key)
	require.NoError(t, err)
	c0, err := adapter.Encrypt(5)
	require.NoError(t, err)
	c1, err := adapter.Encrypt(5)
	require.NoError(t, err)
	_, err = s.Initialize([][]byte{c0, c1})
	require.NoError(t, err)

	before := [][]byte{append([]byte(nil), c0...), append([]byte(nil), c1...)}

	o := orchestrator.New(orchestrator.NewHTTPStoreClient(ts.URL), adapter, orchestrator.NewDeterministicSeedSource(3), orchestrator.DefaultConfig())
	require.NoError(t, o.Sort(context.Background(), 2))

	after, _, _ := s.GetFinalArray()
	for i := range after {
		assert.NotEqual(t, before[i], after[i])
		v, err := adapter.Decrypt(after[i])
		require.NoError(t, err)
		assert.Equal(t, uint32(5), v)
	}
}
