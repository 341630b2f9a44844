// Package orchestrator implements the Sort Orchestrator: the client-side
// driver of the full Randomized Shell Sort schedule. It holds the
// symmetric key (via an cipher.Adapter), draws cryptographic seeds for
// each region matching, and issues GetPair/decrypt/compare/encrypt/
// WritePair round trips against a remote Oblivious Store.
//
// # Control flow
//
//	Sort(ctx, N)
//	  в”‚
//	  в–ј
//	for each RegionPair in schedule.Generate(N)
//	  в”‚
//	  в–ј
//	regionCompareExchange(pair)       в”Җв”Җ c independent matchings
//	  в”‚
//	  в–ј
//	for i in 0..size: GetMate в†’ compareExchange(idxA, idxB)
//	  в”‚
//	  в–ј
//	compareExchange: GetPair в†’ decrypt в†’ order в†’ re-encrypt в†’ WritePair
//
// Every step above is a blocking network round trip; the Orchestrator is
// strictly single-threaded and sequential, so no two compare-exchanges ever
// overlap and the array's multiset of values can never be disturbed by
// interleaving.
package orchestrator
