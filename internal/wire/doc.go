// Package wire defines the RPC message contracts exchanged between the Sort
// Orchestrator (client) and the Oblivious Store (server), plus the small
// JSON-over-HTTP helpers both sides use to speak them.
//
// # Overview
//
// Every operation the core exposes - Initialize, UseHashArrayForSorting,
// GetPair, WritePair, GetMate, GetFinalArray - has a request and response
// type here. Types are kept deliberately flat (no nested client logic) so
// that both cmd/obliviousstored and cmd/obliviousort can share them without
// either depending on the other's package.
//
// # Transport
//
//	Orchestrator                         Store
//	     в”Ӯ   POST /sort/initialize           в”Ӯ
//	     в”Ӯвҗ’в”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Ӯ
//	     в”Ӯ   GET  /sort/pair?a=&b=           в”Ӯ
//	     в”Ӯвҗ’в”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Ӯ
//	     в”Ӯ   GET  /sort/mate?size=&seed=&index= в”Ӯ
//	     в”Ӯвҗ’в”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Ӯ
//	     в”Ӯ   POST /sort/pair                 в”Ӯ
//	     в”Ӯвҗ’в”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Ӯ
//	     в”Ӯ   GET  /sort/final                в”Ӯ
//	     в”Ӯвҗ’в”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Җв”Ӯ
//
// # Failure codes
//
// The core recognizes exactly four externally visible failure kinds:
// InvalidArgument, FailedPrecondition, OutOfRange, and Internal (a catch-all
// for anything that is the server's fault rather than the caller's). These
// are carried by StatusError and mapped to HTTP status codes at the edge.
package wire
