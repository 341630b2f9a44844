// Package cipher implements the Encryption Adapter: the client-side
// capability for turning plaintext array elements into opaque, freshly
// randomized ciphertext cells and back.
//
// # Contract
//
// Adapter.Encrypt must be correct (Decrypt undoes it), fresh (two calls on
// the same plaintext yield different bytes with overwhelming probability),
// and authenticated (Decrypt returns IntegrityError on any ciphertext not
// produced by this adapter under its current key). The Store never needs to
// know any of this; it only ever stores and moves opaque []byte cells.
//
// # Implementations
//
// SecretboxAdapter is the production implementation, built on
// golang.org/x/crypto/nacl/secretbox: a 24-byte nonce drawn fresh from
// crypto/rand precedes each sealed box, exactly the pattern used for
// authenticated symmetric messages elsewhere in this corpus (zkc's session
// key exchange, panda's message layer). ToyAdapter is an XOR-based
// stand-in used only by tests that need to peek at ciphertext structure;
// it is never wired into a production binary.
package cipher
