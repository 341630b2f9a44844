package orchestrator

import (
	"context"
	"fmt"
	"log"

	"github.com/dreamware/oblivsort/internal/cipher"
	"github.com/dreamware/oblivsort/internal/schedule"
)

// DefaultFanOut is the number of independent random matchings performed per
// region compare-exchange ("c"), the value the algorithm's analysis assumes
// when no caller overrides it.
const DefaultFanOut = 4

// Config holds the Orchestrator's tunables. Start from DefaultConfig and
// override fields as needed; New replaces a FanOut below 1 with
// DefaultFanOut.
type Config struct {
	// FanOut is c, the number of random matchings per region
	// compare-exchange. Must be >= 1; defaults to DefaultFanOut.
	FanOut int
	// Verbose enables a log line per region-pair in addition to the
	// always-on per-sort summary line.
	Verbose bool
}

// DefaultConfig returns the Orchestrator's default tunables.
func DefaultConfig() Config {
	return Config{FanOut: DefaultFanOut}
}

// Orchestrator drives the full Randomized Shell Sort schedule against a
// remote Oblivious Store. For every pair of cells it touches, it:
//   - fetches both ciphertexts with GetPair
//   - decrypts only those two values, just long enough to compare them
//   - re-encrypts both under a fresh nonce/tag, regardless of outcome
//   - writes both cells back with WritePair, even the one that didn't move
//
// The Store never sees a plaintext and never learns whether a given
// WritePair actually changed a value. See doc.go for the full control flow.
type Orchestrator struct {
	client  StoreClient
	adapter cipher.Adapter
	seeds   SeedSource
	cfg     Config
}

// New builds an Orchestrator. seeds defaults to CryptoSeedSource{} when nil.
func New(client StoreClient, adapter cipher.Adapter, seeds SeedSource, cfg Config) *Orchestrator {
	if cfg.FanOut <= 0 {
		cfg.FanOut = DefaultFanOut
	}
	if seeds == nil {
		seeds = CryptoSeedSource{}
	}
	return &Orchestrator{client: client, adapter: adapter, seeds: seeds, cfg: cfg}
}

// Sort drives the complete schedule for an array of length n. Precondition:
// n is a power of two and the Store already holds n cells (via Initialize
// or UseHashArrayForSorting).
func (o *Orchestrator) Sort(ctx context.Context, n int) error {
	pairs, err := schedule.Generate(n)
	if err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}

	log.Printf("orchestrator: sorting n=%d over %d region-pairs (c=%d)", n, len(pairs), o.cfg.FanOut)

	for _, p := range pairs {
		if o.cfg.Verbose {
			log.Printf("orchestrator: region-compare-exchange a=%d b=%d size=%d", p.AStart, p.BStart, p.Size)
		}
		if err := o.regionCompareExchange(ctx, p.AStart, p.BStart, p.Size); err != nil {
			return err
		}
	}

	log.Printf("orchestrator: sort complete n=%d", n)
	return nil
}

// regionCompareExchange performs c independent random matchings between
// region A and region B, applying compare-exchange to every matched pair
// within each matching.
func (o *Orchestrator) regionCompareExchange(ctx context.Context, aStart, bStart, size int) error {
	for m := 0; m < o.cfg.FanOut; m++ {
		seed, err := o.seeds.NextSeed()
		if err != nil {
			return fmt.Errorf("orchestrator: draw seed: %w", err)
		}

		for i := 0; i < size; i++ {
			mate, err := o.client.GetMate(ctx, size, seed, i)
			if err != nil {
				return fmt.Errorf("orchestrator: GetMate(%d,%d,%d): %w", size, seed, i, err)
			}

			idxA := aStart + i
			idxB := bStart + mate
			if err := o.compareExchange(ctx, idxA, idxB); err != nil {
				return err
			}
		}
	}
	return nil
}

// compareExchange fetches, decrypts, orders, re-encrypts, and writes back
// the pair at idxA/idxB. Direction is encoded purely by index order: if
// idxA < idxB the pair is written ascending, otherwise descending. Both
// cells are rewritten unconditionally, even when already in order, so the
// Store's observed write trace never depends on the plaintexts.
func (o *Orchestrator) compareExchange(ctx context.Context, idxA, idxB int) error {
	ca, cb, err := o.client.GetPair(ctx, idxA, idxB)
	if err != nil {
		return fmt.Errorf("orchestrator: GetPair(%d,%d): %w", idxA, idxB, err)
	}

	a, err := o.adapter.Decrypt(ca)
	if err != nil {
		return fmt.Errorf("orchestrator: decrypt a at %d: %w", idxA, err)
	}
	b, err := o.adapter.Decrypt(cb)
	if err != nil {
		return fmt.Errorf("orchestrator: decrypt b at %d: %w", idxB, err)
	}

	var newA, newB uint32
	if idxA < idxB {
		newA, newB = minU32(a, b), maxU32(a, b)
	} else {
		newA, newB = maxU32(a, b), minU32(a, b)
	}

	newCA, err := o.adapter.Encrypt(newA)
	if err != nil {
		return fmt.Errorf("orchestrator: encrypt a for %d: %w", idxA, err)
	}
	newCB, err := o.adapter.Encrypt(newB)
	if err != nil {
		return fmt.Errorf("orchestrator: encrypt b for %d: %w", idxB, err)
	}

	if err := o.client.WritePair(ctx, idxA, idxB, newCA, newCB); err != nil {
		return fmt.Errorf("orchestrator: WritePair(%d,%d): %w", idxA, idxB, err)
	}
	return nil
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
