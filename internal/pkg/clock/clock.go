// Package clock provides the time source used for server-assigned
// timestamps. Repositories and handlers depend on the Clock interface so
// tests can substitute a fixed time.
package clock

import "time"

// Now returns the current time in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// Clock abstracts the time source.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock backed by the system time.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return Now()
}
