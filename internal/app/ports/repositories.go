package ports

import (
	"context"
	"time"

	"heavenearth/internal/domain/cultivation"
)

// PlayerRepository is the durable mapping from player identity to record.
// Save must be atomic with respect to crashes so readers only ever observe
// fully committed snapshots.
type PlayerRepository interface {
	LoadAll(ctx context.Context) ([]cultivation.Player, error)
	GetByID(ctx context.Context, id string) (cultivation.Player, error)
	Create(ctx context.Context, player cultivation.Player) error
	Save(ctx context.Context, player cultivation.Player) error
}

// CalendarRepository persists the world start timestamp backing the in-game
// calendar. LoadOrCreateStart returns the stored anchor, writing now as the
// anchor on first run.
type CalendarRepository interface {
	LoadOrCreateStart(ctx context.Context, now time.Time) (time.Time, error)
}
