// Package schedule implements the Schedule Generator: the deterministic,
// pure sequence of region-pairs that the Sort Orchestrator drives through
// region compare-exchange to carry out a Randomized Shell Sort pass.
//
// # Overview
//
// For an array of length N (a power of two), the schedule iterates offset
// from N/2 down to 1, halving each round. At each offset there are
// num_regions = N/offset regions of length offset, and six sub-passes run
// over them in order: shaker forward, shaker backward, brick 3-hop, brick
// 2-hop, brick even-adjacent, brick odd-adjacent. See Generate's doc comment
// for the exact index bounds - they differ by one from some published
// variants of the algorithm.
//
// This package holds no state and performs no I/O; it is safe to call from
// any number of goroutines and is exercised directly by tests without a
// network or a Store.
package schedule
