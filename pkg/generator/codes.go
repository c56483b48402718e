package generator

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomCode returns a random hex string of the given length.
func RandomCode(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes)[:length], nil
}
