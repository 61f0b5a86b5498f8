package mocks

import (
	"sync"

	"github.com/mcoot/linkboard/internal/dependencies/random"
)

// MockRandom returns queued strings, then falls back to a deterministic
// sequence so callers that retry on collision still terminate
type MockRandom struct {
	mu       sync.Mutex
	queue    []string
	fallback int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// QueueString adds values to be returned by String, in order
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, values...)
}

// String returns the next queued value. With an empty queue it returns the
// next number in alphabet's base, left-padded to length.
func (r *MockRandom) String(length int, alphabet string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) > 0 {
		next := r.queue[0]
		r.queue = r.queue[1:]
		return next
	}
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}

	n := r.fallback
	r.fallback++
	out := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		out[i] = alphabet[n%len(alphabet)]
		n /= len(alphabet)
	}
	return string(out)
}

// Reset clears the queue and restarts the fallback sequence
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = nil
	r.fallback = 0
}
