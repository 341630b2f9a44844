package orchestrator

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
)

// SeedSource draws the per-matching seeds the Orchestrator sends (via
// GetMate calls) to the Matching Oracle. Production code must use a
// cryptographic source so that an observer predicting a seed gains no
// information about the schedule's outcome; deterministic sources exist
// only for tests that need reproducible runs.
type SeedSource interface {
	NextSeed() (int64, error)
}

// CryptoSeedSource draws each seed fresh from crypto/rand, the production
// default. Every seed is used for exactly one GetMate(size, seed, ...)
// sequence.
type CryptoSeedSource struct{}

// NextSeed implements SeedSource.
func (CryptoSeedSource) NextSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("orchestrator: draw seed: %w", err)
	}
	// Clear the sign bit so seeds are non-negative; the matching oracle
	// only needs reproducibility, not a full 64 bits of entropy per draw.
	v := int64(binary.BigEndian.Uint64(buf[:]) &^ (1 << 63))
	return v, nil
}

// DeterministicSeedSource draws seeds from a fixed-seed math/rand source,
// for tests that need a reproducible sequence of region-compare-exchange
// matchings.
type DeterministicSeedSource struct {
	r *mrand.Rand
}

// NewDeterministicSeedSource builds a DeterministicSeedSource from seed.
func NewDeterministicSeedSource(seed int64) *DeterministicSeedSource {
	return &DeterministicSeedSource{r: mrand.New(mrand.NewSource(seed))}
}

// NextSeed implements SeedSource.
func (d *DeterministicSeedSource) NextSeed() (int64, error) {
	return d.r.Int63(), nil
}
