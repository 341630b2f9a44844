package matching

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutationIsDeterministic(t *testing.T) {
	a := Permutation(16, 42)
	b := Permutation(16, 42)
	assert.Equal(t, a, b)
}

func TestPermutationIsBijection(t *testing.T) {
	perm := Permutation(16, 42)
	sorted := append([]int(nil), perm...)
	sort.Ints(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}
}

func TestPermutationDiffersAcrossSeeds(t *testing.T) {
	a := Permutation(32, 1)
	b := Permutation(32, 2)
	assert.NotEqual(t, a, b)
}

func TestCacheMemoizesPerKey(t *testing.T) {
	c := NewCache()
	first := c.Get(16, 42)
	second := c.Get(16, 42)
	require.Equal(t, first, second)

	other := c.Get(16, 43)
	assert.NotEqual(t, first, other)
}

func TestCacheClearResetsState(t *testing.T) {
	c := NewCache()
	_ = c.Get(8, 1)
	c.Clear()
	assert.Empty(t, c.entries)
}

func TestCacheMaterializesOnceUnderConcurrency(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	results := make([][]int, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Get(128, 7)
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		assert.Equal(t, results[0], results[i])
	}
}
