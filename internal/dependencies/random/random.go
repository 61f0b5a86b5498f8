package random

import (
	"crypto/rand"
)

// Random generates identifiers such as board codes
type Random interface {
	// String returns length characters drawn uniformly from alphabet
	String(length int, alphabet string) string
}

// Crypto draws from crypto/rand
type Crypto struct{}

// New creates a Crypto source
func New() *Crypto {
	return &Crypto{}
}

// String returns a random string from alphabet. Bytes that would bias the
// distribution are rejected and redrawn.
func (r *Crypto) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 || len(alphabet) > 256 {
		return ""
	}

	limit := 256 - 256%len(alphabet)
	out := make([]byte, 0, length)
	buf := make([]byte, length*2)
	for len(out) < length {
		// crypto/rand.Read never returns an error on supported platforms
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out)
}
