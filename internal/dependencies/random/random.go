package random

import (
	"crypto/rand"
)

// Random produces the codes handed out for new sessions
type Random interface {
	// String returns length characters drawn uniformly from alphabet
	String(length int, alphabet string) string
}

// CryptoRandom draws from crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// String implements Random. Bytes at or above the largest multiple of
// len(alphabet) are rejected so every character is equally likely.
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || alphabet == "" || len(alphabet) > 256 {
		return ""
	}

	limit := 256 - 256%len(alphabet)
	out := make([]byte, 0, length)
	buf := make([]byte, length)
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
