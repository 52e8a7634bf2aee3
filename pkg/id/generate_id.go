package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns an opaque 32-char lowercase-hex identifier. Every entity
// row in the store is keyed by one of these.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
