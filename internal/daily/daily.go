// Package daily derives deterministic puzzle seeds from calendar dates so
// every player gets the same puzzle on the same day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns HMAC-SHA256(salt, YYYY-MM-DD) folded into a uint64.
func Seed(date time.Time, salt string) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes give an evenly distributed value
	return binary.BigEndian.Uint64(sum[:8])
}
