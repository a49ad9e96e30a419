package memory

import (
	"context"
	"sort"

	"heavenearth/internal/app/ports"
	"heavenearth/internal/domain/cultivation"
)

type PlayerRepo struct {
	store *Store
}

func NewPlayerRepo(store *Store) PlayerRepo {
	return PlayerRepo{store: store}
}

func (r PlayerRepo) LoadAll(_ context.Context) ([]cultivation.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]cultivation.Player, 0, len(r.store.players))
	for _, p := range r.store.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r PlayerRepo) GetByID(_ context.Context, id string) (cultivation.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.players[id]
	if !ok {
		return cultivation.Player{}, ports.ErrNotRegistered
	}
	return p, nil
}

func (r PlayerRepo) Create(_ context.Context, p cultivation.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.players[p.ID]; ok {
		return ports.ErrAlreadyRegistered
	}
	r.store.players[p.ID] = p
	return nil
}

func (r PlayerRepo) Save(_ context.Context, p cultivation.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.players[p.ID] = p
	return nil
}
