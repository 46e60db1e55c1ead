package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewSessionToken returns a 256-bit random token rendered as hex.
// The token is opaque; all meaning lives in the session store.
func NewSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
