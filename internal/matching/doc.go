// Package matching implements the Matching Oracle: a deterministic
// pseudorandom permutation of {0, ..., size-1} derived from a seed, used by
// the Oblivious Store to answer GetMate.
//
// # Determinism, not secrecy
//
// The permutation is generated by the server and is not required to be
// unpredictable to it - obliviousness comes from the server always seeing
// the same schedule of index pairs regardless of plaintext content, not
// from hiding the matching itself. A seeded math/rand source is therefore
// the right tool here (see DESIGN.md for why this is the one place in the
// repo that does not reach for a crypto/x dependency): it is reproducible
// across calls with the same (size, seed), which is the only property
// GetMate's idempotence requirement demands.
//
// # Memoization
//
// Cache computes (via Permutation) and caches a permutation per (size, seed) key so
// repeated GetMate calls for the same key are O(1) after the first and so
// concurrent GetMate calls for different keys never serialize behind one
// global lock; see Cache.
package matching
