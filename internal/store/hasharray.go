package store

import "sync"

// HashArray is the consuming side of the upstream OBFI pipeline's output:
// an append-only buffer of ciphertext cells that the pipeline populates
// element by element and then finalizes once, signalling the Store that
// UseHashArrayForSorting may proceed. The pipeline itself (hash-position
// generation, Bloom-filter parameter math) is out of scope for this repo;
// this type is only the interface to it.
type HashArray struct {
	mu        sync.Mutex
	cells     [][]byte
	finalized bool
}

// NewHashArray builds an empty, unfinalized hash array.
func NewHashArray() *HashArray {
	return &HashArray{}
}

// Append adds one ciphertext cell to the hash array. It fails if the array
// has already been finalized - the pipeline must finish uploading before
// signalling readiness.
func (h *HashArray) Append(cell []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.finalized {
		return errHashArrayFinalized
	}
	h.cells = append(h.cells, cloneCell(cell))
	return nil
}

// Finalize marks the hash array as ready for UseHashArrayForSorting.
func (h *HashArray) Finalize() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.finalized = true
}

// Snapshot returns a copy of the current cells and whether the array has
// been finalized.
func (h *HashArray) Snapshot() ([][]byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cells := make([][]byte, len(h.cells))
	for i, c := range h.cells {
		cells[i] = cloneCell(c)
	}
	return cells, h.finalized
}

// Reset clears the hash array back to empty and unfinalized, for tests that
// drive multiple upload cycles against one Store.
func (h *HashArray) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cells = nil
	h.finalized = false
}

var errHashArrayFinalized = hashArrayFinalizedError{}

type hashArrayFinalizedError struct{}

func (hashArrayFinalizedError) Error() string {
	return "store: hash array already finalized"
}
