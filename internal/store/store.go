package store

import (
	"sync"
	"sync/atomic"

	"github.com/dreamware/oblivsort/internal/matching"
	"github.com/dreamware/oblivsort/internal/wire"
)

// Store is the Oblivious Store: the server side of a sort session. It:
//   - holds the encrypted array and answers GetPair/WritePair at the
//     indices the Orchestrator names, never inspecting plaintext
//   - serves GetMate from a Matching Oracle, memoized per (size, seed)
//   - counts comparisons and writes for the session's final report
//   - records a bounded trace of recent operations for obliviousness tests
//
// Thread safety: cell access is guarded by mu; comparisons/writes use
// atomics so GetFinalArray's read doesn't contend with in-flight
// GetPair/WritePair calls. See doc.go for the full architecture.
type Store struct {
	mu    sync.RWMutex
	cells [][]byte

	comparisons int64
	writes      int64

	perms *matching.Cache
	trace *OpTrace

	hashArray *HashArray
}

// New builds an empty Store. traceCapacity bounds the recent-ops ring
// buffer; pass 0 for the default (4096).
func New(traceCapacity int) *Store {
	return &Store{
		perms:     matching.NewCache(),
		trace:     NewOpTrace(traceCapacity),
		hashArray: NewHashArray(),
	}
}

// HashArray exposes the upstream hash array this Store will copy from on
// UseHashArrayForSorting. The OBFI pipeline (out of scope for this repo)
// populates it via Append/Finalize.
func (s *Store) HashArray() *HashArray { return s.hashArray }

// RecentOps returns the most recent operations observed by the Store, in
// chronological order. It exists purely for obliviousness testing - asserting
// that the observed access pattern is independent of the sorted values - and
// is never consulted by the sort algorithm itself.
func (s *Store) RecentOps() []Op { return s.trace.Recent() }

// Initialize installs cells as the new encrypted array, resetting counters
// and the permutation cache. It always succeeds (no preconditions).
func (s *Store) Initialize(cells [][]byte) (int, error) {
	s.mu.Lock()
	s.cells = make([][]byte, len(cells))
	copy(s.cells, cells)
	s.mu.Unlock()

	atomic.StoreInt64(&s.comparisons, 0)
	atomic.StoreInt64(&s.writes, 0)
	s.perms.Clear()

	s.trace.Add(Op{Kind: OpInitialize, A: len(cells)})
	return len(cells), nil
}

// UseHashArrayForSorting copies the upstream hash array into the sort
// array, resetting counters and the permutation cache, exactly like
// Initialize. It fails FailedPrecondition if the hash array has not been
// finalized by the upstream pipeline.
func (s *Store) UseHashArrayForSorting() (int, error) {
	cells, finalized := s.hashArray.Snapshot()
	if !finalized {
		return 0, wire.NewStatusError(wire.CodeFailedPrecondition, "hash array is not finalized")
	}

	s.mu.Lock()
	s.cells = cells
	s.mu.Unlock()

	atomic.StoreInt64(&s.comparisons, 0)
	atomic.StoreInt64(&s.writes, 0)
	s.perms.Clear()

	s.trace.Add(Op{Kind: OpUseHashArray, A: len(cells)})
	return len(cells), nil
}

// GetPair returns the current ciphertexts at i and j, incrementing
// comparisons by one regardless of whether i == j.
func (s *Store) GetPair(i, j int) ([]byte, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkIndex(i); err != nil {
		return nil, nil, err
	}
	if err := s.checkIndex(j); err != nil {
		return nil, nil, err
	}

	atomic.AddInt64(&s.comparisons, 1)
	s.trace.Add(Op{Kind: OpGetPair, A: i, B: j})
	return cloneCell(s.cells[i]), cloneCell(s.cells[j]), nil
}

// WritePair unconditionally overwrites the cells at i and j, incrementing
// writes by one. It is idempotent: calling it twice with the same
// arguments leaves the array in the same state (metrics aside).
func (s *Store) WritePair(i, j int, ci, cj []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(i); err != nil {
		return err
	}
	if err := s.checkIndex(j); err != nil {
		return err
	}

	s.cells[i] = cloneCell(ci)
	s.cells[j] = cloneCell(cj)

	atomic.AddInt64(&s.writes, 1)
	s.trace.Add(Op{Kind: OpWritePair, A: i, B: j})
	return nil
}

// GetMate returns the i-th value of the pseudorandom permutation of
// {0, ..., size-1} keyed by seed, materializing and caching it on first
// use for this (size, seed) pair.
func (s *Store) GetMate(size int, seed int64, i int) (int, error) {
	if size <= 0 {
		return 0, wire.NewStatusError(wire.CodeInvalidArgument, "size must be positive, got %d", size)
	}
	if i < 0 || i >= size {
		return 0, wire.NewStatusError(wire.CodeOutOfRange, "index %d out of range [0,%d)", i, size)
	}

	perm := s.perms.Get(size, seed)
	s.trace.Add(Op{Kind: OpGetMate, A: size, B: i})
	return perm[i], nil
}

// GetFinalArray returns a copy of the full array plus the running counters.
func (s *Store) GetFinalArray() ([][]byte, int64, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cells := make([][]byte, len(s.cells))
	for i, c := range s.cells {
		cells[i] = cloneCell(c)
	}

	s.trace.Add(Op{Kind: OpGetFinalArray})
	return cells, atomic.LoadInt64(&s.comparisons), atomic.LoadInt64(&s.writes)
}

// checkIndex must be called with s.mu held (read or write).
func (s *Store) checkIndex(i int) error {
	if i < 0 || i >= len(s.cells) {
		return wire.NewStatusError(wire.CodeOutOfRange, "index %d out of range [0,%d)", i, len(s.cells))
	}
	return nil
}

func cloneCell(c []byte) []byte {
	out := make([]byte, len(c))
	copy(out, c)
	return out
}
