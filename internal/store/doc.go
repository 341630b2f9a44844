// Package store implements the Oblivious Store: the server-side component
// holding the encrypted array, answering GetPair/WritePair at fixed
// indices, serving GetMate from the Matching Oracle, and counting
// operations.
//
// # Architecture
//
//	в”Ңв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Ӯ
//	в”Ӯ                         Store                          в”Ӯ
//	в”ңв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Ӯ
//	в”Ӯ  cells [][]byte       - the encrypted array, RWMutex   в”Ӯ
//	в”Ӯ  comparisons, writes  - atomic counters                в”Ӯ
//	в”Ӯ  perms *matching.Cache - GetMate memoization            в”Ӯ
//	в”Ӯ  trace *OpTrace       - bounded recent-ops log (LRU)   в”Ӯ
//	в”ңв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Ӯ
//	в”Ӯ  Initialize / UseHashArrayForSorting                   в”Ӯ
//	в”Ӯ  GetPair, WritePair, GetMate, GetFinalArray             в”Ӯ
//	в””в”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”ҳ
//
// # Session model
//
// A Store holds at most one sort session at a time. Initialize and
// UseHashArrayForSorting both replace the array wholesale and reset
// counters and the permutation cache; there is no way to run two sorts
// concurrently against one Store.
//
// # Concurrency
//
// Cell reads and writes are guarded by a single sync.RWMutex; counters use
// sync/atomic so GetFinalArray's snapshot doesn't need to contend with
// them. GetMate delegates to matching.Cache, whose own per-key locking lets
// distinct (size, seed) lookups proceed without serializing behind the
// array's lock or each other.
package store
