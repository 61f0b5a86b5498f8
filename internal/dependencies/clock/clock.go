package clock

import "time"

// Clock provides the current time. Board timestamps and release ids are
// taken from it so tests can pin them.
type Clock interface {
	Now() time.Time
}

// Func adapts a function to Clock
type Func func() time.Time

// Now calls f
func (f Func) Now() time.Time {
	return f()
}

// New returns a Clock backed by the system time
func New() Func {
	return time.Now
}
