// Package storeserver exposes an internal/store.Store over the JSON-over-
// HTTP wire protocol defined in internal/wire, for use by both
// cmd/obliviousstored (the production binary) and integration tests that
// want a real HTTP round trip without a separate process.
package storeserver
