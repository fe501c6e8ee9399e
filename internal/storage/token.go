package storage

import (
	"crypto/rand"
	"encoding/hex"
)

// NewSessionToken returns a 64-char random hex token. Collision odds over
// 32 random bytes are negligible, so backends insert without checking.
func NewSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
