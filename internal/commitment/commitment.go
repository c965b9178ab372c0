// Package commitment implements the commit/reveal half of a provably fair round.
//
// The computer publishes Commit(key, move) before the human picks, then reveals
// the key. Anyone can recompute the HMAC to confirm the move was not changed:
//
//	echo -n "Rock" | openssl dgst -sha256 -hmac "<key>"
package commitment

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MinKeyBytes is the smallest key size accepted (256 bits)
const MinKeyBytes = 32

// ErrKeyTooShort is returned when a key would carry less than MinKeyBytes of entropy
var ErrKeyTooShort = errors.New("key too short")

// Key is a hex-encoded secret. The hex text itself is used as the HMAC key.
type Key string

func (k Key) String() string { return string(k) }

// GenerateKey reads size random bytes from r and hex-encodes them. A nil reader
// means crypto/rand.
func GenerateKey(r io.Reader, size int) (Key, error) {
	if size < MinKeyBytes {
		return "", fmt.Errorf("%w: %d bytes, need at least %d", ErrKeyTooShort, size, MinKeyBytes)
	}
	if r == nil {
		r = rand.Reader
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return Key(hex.EncodeToString(buf)), nil
}

// Commit returns the hex HMAC-SHA-256 of move keyed by key
func Commit(key Key, move string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(move))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether digest is the commitment of move under key. Hex case
// is ignored.
func Verify(key Key, move, digest string) bool {
	want, err := hex.DecodeString(strings.TrimSpace(digest))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(move))
	return hmac.Equal(mac.Sum(nil), want)
}
