package matching

import "math/rand"

// Permutation deterministically derives a permutation of {0, ..., size-1}
// from seed by seeding a PRNG and performing a Fisher-Yates shuffle of the
// identity sequence. Any seed value maps to exactly one permutation; calling
// this twice with the same (size, seed) always produces byte-identical
// output.
func Permutation(size int, seed int64) []int {
	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}

	r := rand.New(rand.NewSource(seed))
	// Fisher-Yates: for i from size-1 down to 1, swap perm[i] with perm[j]
	// for a uniformly random j in [0, i].
	for i := size - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
