package schedule

import "fmt"

// RegionPair names two disjoint regions of length Size that the Orchestrator
// must run through region compare-exchange, in the given order: region A
// starts at AStart, region B starts at BStart. Direction matters - it is
// how compare-exchange tells ascending from descending.
type RegionPair struct {
	AStart int
	BStart int
	Size   int
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Generate returns the full Randomized Shell Sort schedule for an array of
// length n: the ordered sequence of region-pairs the Orchestrator must run
// through region compare-exchange, across every offset from n/2 down to 1.
//
// At each offset, numRegions = n/offset regions of length offset are swept
// in six sub-passes, in this order:
//
//  1. shaker forward:  i = 0 .. numRegions-2,   pair(region i, region i+1)
//  2. shaker backward: i = numRegions-2 .. 0,   pair(region i+1, region i)
//  3. brick 3-hop (numRegions >= 4): i = 0 .. numRegions-4, pair(region i, region i+3)
//  4. brick 2-hop (numRegions >= 3): i = 0 .. numRegions-3, pair(region i, region i+2)
//  5. brick even-adjacent: even i = 0, 2, ... <= numRegions-2, pair(region i, region i+1)
//  6. brick odd-adjacent:  odd  i = 1, 3, ... <= numRegions-2, pair(region i, region i+1)
//
// The bounds above (numRegions-4 for 3-hop, numRegions-3 for 2-hop) are
// authoritative for this implementation; they differ by one from some
// published variants of the algorithm.
func Generate(n int) ([]RegionPair, error) {
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("schedule: n must be a power of two, got %d", n)
	}

	var pairs []RegionPair

	for offset := n / 2; offset >= 1; offset /= 2 {
		numRegions := n / offset

		add := func(a, b int) {
			pairs = append(pairs, RegionPair{
				AStart: a * offset,
				BStart: b * offset,
				Size:   offset,
			})
		}

		// 1. shaker forward
		for i := 0; i <= numRegions-2; i++ {
			add(i, i+1)
		}
		// 2. shaker backward
		for i := numRegions - 2; i >= 0; i-- {
			add(i+1, i)
		}
		// 3. brick 3-hop
		if numRegions >= 4 {
			for i := 0; i <= numRegions-4; i++ {
				add(i, i+3)
			}
		}
		// 4. brick 2-hop
		if numRegions >= 3 {
			for i := 0; i <= numRegions-3; i++ {
				add(i, i+2)
			}
		}
		// 5. brick even-adjacent
		for i := 0; i <= numRegions-2; i += 2 {
			add(i, i+1)
		}
		// 6. brick odd-adjacent
		for i := 1; i <= numRegions-2; i += 2 {
			add(i, i+1)
		}
	}

	return pairs, nil
}

// PadToPowerOfTwo appends sentinel to values until the length is a power of
// two, returning the padded slice and the original (pre-padding) length so
// the caller can Strip the padding back off after sorting. sentinel must
// compare greater than every real value so the padding sinks to the end of
// an ascending sort.
func PadToPowerOfTwo(values []uint32, sentinel uint32) (padded []uint32, originalLen int) {
	originalLen = len(values)
	n := 1
	for n < originalLen {
		n *= 2
	}
	if n == 0 {
		n = 1
	}
	padded = make([]uint32, n)
	copy(padded, values)
	for i := originalLen; i < n; i++ {
		padded[i] = sentinel
	}
	return padded, originalLen
}

// Strip removes the trailing sentinel padding added by PadToPowerOfTwo,
// returning the first originalLen elements of sorted.
func Strip(sorted []uint32, originalLen int) []uint32 {
	if originalLen > len(sorted) {
		originalLen = len(sorted)
	}
	return sorted[:originalLen]
}
