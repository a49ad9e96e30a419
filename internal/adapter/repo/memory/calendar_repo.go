package memory

import (
	"context"
	"time"
)

type CalendarRepo struct {
	store *Store
}

func NewCalendarRepo(store *Store) CalendarRepo {
	return CalendarRepo{store: store}
}

func (r CalendarRepo) LoadOrCreateStart(_ context.Context, now time.Time) (time.Time, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.calendarStart.IsZero() {
		r.store.calendarStart = now
	}
	return r.store.calendarStart, nil
}
