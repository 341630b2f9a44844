package cipher

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// KeySize is the size in bytes of a SecretboxAdapter key.
const KeySize = 32

// nonceSize is secretbox's fixed nonce size.
const nonceSize = 24

// SecretboxAdapter is the production Encryption Adapter, sealing each
// 32-bit plaintext (big-endian) with golang.org/x/crypto/nacl/secretbox
// under a fresh random nonce per call. The nonce is prepended to the sealed
// box so Decrypt is self-contained given only the cell bytes and the key.
type SecretboxAdapter struct {
	key [KeySize]byte
}

// NewSecretboxAdapter builds an adapter from a 32-byte symmetric key.
func NewSecretboxAdapter(key []byte) (*SecretboxAdapter, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("cipher: key must be %d bytes, got %d", KeySize, len(key))
	}
	a := &SecretboxAdapter{}
	copy(a.key[:], key)
	return a, nil
}

// GenerateKey draws a fresh random symmetric key from crypto/rand.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("cipher: generate key: %w", err)
	}
	return key, nil
}

// Encrypt implements Adapter.
func (a *SecretboxAdapter) Encrypt(v uint32) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("cipher: draw nonce: %w", err)
	}

	var plaintext [4]byte
	binary.BigEndian.PutUint32(plaintext[:], v)

	out := make([]byte, nonceSize, nonceSize+4+secretbox.Overhead)
	copy(out, nonce[:])
	out = secretbox.Seal(out, plaintext[:], &nonce, &a.key)
	return out, nil
}

// Decrypt implements Adapter.
func (a *SecretboxAdapter) Decrypt(cell []byte) (uint32, error) {
	if len(cell) < nonceSize {
		return 0, &IntegrityError{Reason: ErrCiphertextTooShort.Error()}
	}
	var nonce [nonceSize]byte
	copy(nonce[:], cell[:nonceSize])

	plaintext, ok := secretbox.Open(nil, cell[nonceSize:], &nonce, &a.key)
	if !ok {
		return 0, &IntegrityError{Reason: "secretbox authentication failed"}
	}
	if len(plaintext) != 4 {
		return 0, &IntegrityError{Reason: fmt.Sprintf("unexpected plaintext length %d", len(plaintext))}
	}
	return binary.BigEndian.Uint32(plaintext), nil
}
