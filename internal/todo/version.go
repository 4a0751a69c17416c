package todo

import "github.com/google/uuid"

// Version is a (uuid, counter) pair stamped on the todo file so observers
// can detect change without diffing content. id rerolls on Load/Reset;
// counter wraps on every mutation.
type Version struct {
	ID      uuid.UUID
	Counter uint32
}

// NewVersion returns a fresh version with counter 0.
func NewVersion() Version {
	return Version{ID: uuid.New()}
}

// Reset rerolls the id and zeroes the counter.
func (v *Version) Reset() {
	v.ID = uuid.New()
	v.Counter = 0
}

// Increment bumps the counter, wrapping at the uint32 boundary.
func (v *Version) Increment() {
	v.Counter++
}
