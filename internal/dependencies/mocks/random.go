package mocks

import (
	"sync"

	"github.com/mcoot/yahtzee-scorekeeper/internal/dependencies/random"
)

// MockRandom hands out queued strings first. Once the queue is empty it
// counts upward through the alphabet so every call still yields a distinct code.
type MockRandom struct {
	mu     sync.Mutex
	queued []string
	next   int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with an empty queue
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// QueueString appends values to be returned by String in order
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queued = append(r.queued, values...)
}

// String implements random.Random
func (r *MockRandom) String(length int, alphabet string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queued) > 0 {
		v := r.queued[0]
		r.queued = r.queued[1:]
		return v
	}

	r.next++
	return sequenceCode(r.next, length, alphabet)
}

// sequenceCode writes n in base len(alphabet), left-padded with alphabet[0]
func sequenceCode(n, length int, alphabet string) string {
	if length <= 0 || alphabet == "" {
		return ""
	}
	base := len(alphabet)
	out := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		out[i] = alphabet[n%base]
		n /= base
	}
	return string(out)
}
