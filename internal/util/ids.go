package util

import (
	"crypto/rand"
	"encoding/hex"
)

// NewRunID generates a short (16 hex character) identifier used to
// correlate one computation's logs and summary report.
func NewRunID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
