package memory

import (
	"sync"
	"time"

	"heavenearth/internal/domain/cultivation"
)

// Store is the shared backing map for the in-memory repositories used in
// tests and local development.
type Store struct {
	mu            sync.RWMutex
	players       map[string]cultivation.Player
	calendarStart time.Time
}

func NewStore() *Store {
	return &Store{players: make(map[string]cultivation.Player)}
}

// SeedPlayer installs a record directly, bypassing Create semantics.
func (s *Store) SeedPlayer(p cultivation.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.ID] = p
}
