// Package hasher provides the credential digest used by the user store.
//
// The digest is a single unsalted SHA-512 round, base64 encoded. This is a
// known weakness kept for compatibility with existing stored digests; any
// change here invalidates every credential already persisted.
package hasher

import (
	"crypto/sha512"
	"encoding/base64"
)

// Digest returns the base64-encoded SHA-512 hash of plaintext. Equal inputs
// always produce equal outputs.
func Digest(plaintext string) string {
	sum := sha512.Sum512([]byte(plaintext))
	return base64.StdEncoding.EncodeToString(sum[:])
}
