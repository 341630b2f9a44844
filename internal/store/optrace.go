package store

import (
	"sort"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
)

// OpKind names the kind of operation recorded in an Op.
type OpKind string

const (
	OpInitialize    OpKind = "Initialize"
	OpUseHashArray  OpKind = "UseHashArrayForSorting"
	OpGetPair       OpKind = "GetPair"
	OpWritePair     OpKind = "WritePair"
	OpGetMate       OpKind = "GetMate"
	OpGetFinalArray OpKind = "GetFinalArray"
)

// Op is one entry in the Store's recent-operations trace: a kind plus the
// indices involved (A, B mean different things per kind - e.g. GetPair's
// A/B are the two array indices, GetMate's A/B are size and index).
type Op struct {
	Kind OpKind
	A    int
	B    int
}

// OpTrace is a bounded, append-only log of the last capacity operations the
// Store has served, used by obliviousness tests to assert that the
// sequence of (op, indices) is independent of the plaintexts being sorted.
// It is backed by an LRU cache keyed by a monotonic sequence number: the
// only lookups by key happen in Recent, which reads the entries in
// ascending sequence order and so leaves their recency order equal to their
// insertion order. Insertion order and eviction order therefore coincide,
// giving the bounded ring-buffer semantics this needs without a
// hand-rolled circular-buffer type.
type OpTrace struct {
	seq   int64
	cache *lru.Cache
}

const defaultTraceCapacity = 4096

// NewOpTrace builds an OpTrace holding at most capacity entries (0 means
// the default of 4096).
func NewOpTrace(capacity int) *OpTrace {
	if capacity <= 0 {
		capacity = defaultTraceCapacity
	}
	cache, err := lru.New(capacity)
	if err != nil {
		// Only returns an error for capacity <= 0, which is excluded above.
		panic(err)
	}
	return &OpTrace{cache: cache}
}

// Add appends op to the trace, evicting the oldest entry if the trace is
// already at capacity.
func (t *OpTrace) Add(op Op) {
	n := atomic.AddInt64(&t.seq, 1)
	t.cache.Add(n, op)
}

// Recent returns the entries currently held, in chronological order.
func (t *OpTrace) Recent() []Op {
	keys := t.cache.Keys()
	seqs := make([]int64, 0, len(keys))
	for _, k := range keys {
		seqs = append(seqs, k.(int64))
	}
	sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })

	ops := make([]Op, 0, len(seqs))
	for _, s := range seqs {
		if v, ok := t.cache.Get(s); ok {
			ops = append(ops, v.(Op))
		}
	}
	return ops
}
