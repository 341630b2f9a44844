package orchestrator

import (
	"context"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/dreamware/oblivsort/internal/cipher"
	"github.com/dreamware/oblivsort/internal/store"
)

// inProcessClient implements StoreClient directly over a *store.Store,
// skipping the network. Used only by this package's tests - the production
// path always goes through HTTPStoreClient.
type inProcessClient struct {
	s *store.Store
}

func (c *inProcessClient) Initialize(_ context.Context, cells [][]byte) (int, error) {
	return c.s.Initialize(cells)
}

func (c *inProcessClient) UseHashArrayForSorting(_ context.Context) (int, error) {
	return c.s.UseHashArrayForSorting()
}

func (c *inProcessClient) GetPair(_ context.Context, i, j int) ([]byte, []byte, error) {
	return c.s.GetPair(i, j)
}

func (c *inProcessClient) WritePair(_ context.Context, i, j int, ci, cj []byte) error {
	return c.s.WritePair(i, j, ci, cj)
}

func (c *inProcessClient) GetMate(_ context.Context, size int, seed int64, i int) (int, error) {
	return c.s.GetMate(size, seed, i)
}

func (c *inProcessClient) GetFinalArray(_ context.Context) ([][]byte, int64, int64, error) {
	cells, comparisons, writes := c.s.GetFinalArray()
	return cells, comparisons, writes, nil
}

func newHarness(seed int64) (*Orchestrator, *store.Store) {
	s := store.New(0)
	client := &inProcessClient{s: s}
	adapter := cipher.NewToyAdapter(0xC0FFEE)
	o := New(client, adapter, NewDeterministicSeedSource(seed), DefaultConfig())
	return o, s
}

func TestSortS1(t *testing.T) {
	o, _ := newHarness(1)
	values := []uint32{742, 123, 891, 45, 567, 823, 234, 678}

	result, err := o.SortValues(context.Background(), values)
	require.NoError(t, err)

	assert.Equal(t, []uint32{45, 123, 234, 567, 678, 742, 823, 891}, result.Values)
	assert.True(t, slices.IsSorted(result.Values))
	assert.Greater(t, result.Comparisons, int64(0))
	assert.Greater(t, result.Writes, int64(0))
}

func TestSortS2ReverseWithSentinels(t *testing.T) {
	o, _ := newHarness(2)
	values := []uint32{10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 999999, 999999, 999999, 999999, 999999}

	result, err := o.SortValues(context.Background(), values)
	require.NoError(t, err)

	want := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 999999, 999999, 999999, 999999, 999999}
	assert.Equal(t, want, result.Values)
}

func TestSortS3AllEqual(t *testing.T) {
	o, s := newHarness(3)
	result, err := o.SortValues(context.Background(), []uint32{1, 1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, []uint32{1, 1, 1, 1}, result.Values)

	ops := s.RecentOps()
	getPairs, writePairs := 0, 0
	for _, op := range ops {
		switch op.Kind {
		case store.OpGetPair:
			getPairs++
		case store.OpWritePair:
			writePairs++
		}
	}
	assert.Greater(t, getPairs, 0)
	assert.Greater(t, writePairs, 0)
}

func TestSortS4ObliviousnessAcrossDistinctInputs(t *testing.T) {
	traceOf := func(values []uint32) []store.Op {
		o, s := newHarness(4)
		_, err := o.SortValues(context.Background(), values)
		require.NoError(t, err)
		return s.RecentOps()
	}

	traceA := traceOf([]uint32{1, 2, 3, 4, 5, 6, 7, 8})
	traceB := traceOf([]uint32{8, 7, 6, 5, 4, 3, 2, 1})

	require.Equal(t, len(traceA), len(traceB))
	for i := range traceA {
		assert.Equalf(t, traceA[i], traceB[i], "trace diverges at index %d", i)
	}
}

// TestSortRandomizedTrialsProduceSortedOutput runs many random arrays of
// size 32 through the default fan-out of 4 and requires every single one to
// come out fully sorted - the worked S1/S2/S3 arrays alone only exercise a
// handful of fixed shapes, not the algorithm's general correctness claim.
func TestSortRandomizedTrialsProduceSortedOutput(t *testing.T) {
	const trials = 500
	const n = 32

	gen := mrand.New(mrand.NewSource(20260801))
	for trial := 0; trial < trials; trial++ {
		values := make([]uint32, n)
		for i := range values {
			values[i] = uint32(gen.Intn(1_000_000))
		}

		o, _ := newHarness(int64(trial))
		result, err := o.SortValues(context.Background(), values)
		require.NoError(t, err)
		assert.Truef(t, slices.IsSorted(result.Values), "trial %d produced unsorted output: %v", trial, result.Values)
	}
}

func TestSortS6WritePairBlindness(t *testing.T) {
	o, s := newHarness(6)
	adapter := cipher.NewToyAdapter(0xC0FFEE)
	c0, err := adapter.Encrypt(5)
	require.NoError(t, err)
	c1, err := adapter.Encrypt(5)
	require.NoError(t, err)
	_, _ = s.Initialize([][]byte{c0, c1})
	before, _, _ := s.GetFinalArray()

	require.NoError(t, o.Sort(context.Background(), 2))

	after, _, _ := s.GetFinalArray()
	for i := range before {
		assert.NotEqual(t, before[i], after[i], "cell %d should be freshly re-encrypted", i)
		v, err := adapter.Decrypt(after[i])
		require.NoError(t, err)
		assert.Equal(t, uint32(5), v)
	}
}
