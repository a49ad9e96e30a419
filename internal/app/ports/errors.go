package ports

import "errors"

var (
	// ErrNotRegistered marks the absence of a player record; callers use
	// it to prompt registration.
	ErrNotRegistered = errors.New("player not registered")

	// ErrAlreadyRegistered rejects a duplicate registration; the original
	// record stays untouched.
	ErrAlreadyRegistered = errors.New("player already registered")

	// ErrStorageCorrupt means the backing store exists but is unreadable.
	// Fatal at startup; existing data is never silently discarded.
	ErrStorageCorrupt = errors.New("player store corrupt")

	// ErrStorageWrite marks a failed commit. The scheduler retries next
	// cycle and never advances past the unconfirmed point.
	ErrStorageWrite = errors.New("player store write failed")
)
