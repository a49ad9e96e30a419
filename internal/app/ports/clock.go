package ports

import "time"

// Clock abstracts wall time so the tick scheduler and use cases can run
// against a virtual clock in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
