package tomlrepo

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"heavenearth/internal/app/ports"
	"heavenearth/internal/domain/cultivation"
)

const playersFileName = "players.toml"

type playersFile struct {
	Players map[string]playerRecord `toml:"players"`
}

type playerRecord struct {
	ID                string         `toml:"id"`
	Name              string         `toml:"name"`
	RegisteredAt      time.Time      `toml:"registered_at"`
	LastTickAt        time.Time      `toml:"last_tick_at"`
	Realm             string         `toml:"realm"`
	Stage             string         `toml:"stage"`
	Experience        float64        `toml:"experience"`
	MinutesCultivated int64          `toml:"minutes_cultivated"`
	BattleStats       battleStatsRow `toml:"battle_stats"`
	Version           int64          `toml:"version"`
}

type battleStatsRow struct {
	EnemiesDefeated      int `toml:"enemies_defeated"`
	TribulationsSurvived int `toml:"tribulations_survived"`
}

// PlayerRepo stores every player record in a single players.toml. The file
// is created on first use and rewritten wholesale on each commit.
type PlayerRepo struct {
	mu   sync.Mutex
	path string
}

func NewPlayerRepo(dataDir string) (*PlayerRepo, error) {
	if err := ensureDataDir(dataDir); err != nil {
		return nil, err
	}
	r := &PlayerRepo{path: dataPath(dataDir, playersFileName)}
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		if err := r.writeFile(playersFile{Players: map[string]playerRecord{}}); err != nil {
			return nil, fmt.Errorf("initialise %s: %w", playersFileName, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w", playersFileName, err)
	}
	return r, nil
}

func (r *PlayerRepo) LoadAll(_ context.Context) ([]cultivation.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	file, err := r.readFile()
	if err != nil {
		return nil, err
	}
	out := make([]cultivation.Player, 0, len(file.Players))
	for _, rec := range file.Players {
		out = append(out, toDomain(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerRepo) GetByID(_ context.Context, id string) (cultivation.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	file, err := r.readFile()
	if err != nil {
		return cultivation.Player{}, err
	}
	rec, ok := file.Players[id]
	if !ok {
		return cultivation.Player{}, ports.ErrNotRegistered
	}
	return toDomain(rec), nil
}

func (r *PlayerRepo) Create(_ context.Context, p cultivation.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	file, err := r.readFile()
	if err != nil {
		return err
	}
	if _, ok := file.Players[p.ID]; ok {
		return ports.ErrAlreadyRegistered
	}
	file.Players[p.ID] = toRecord(p)
	return r.writeFile(file)
}

func (r *PlayerRepo) Save(_ context.Context, p cultivation.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	file, err := r.readFile()
	if err != nil {
		return err
	}
	file.Players[p.ID] = toRecord(p)
	return r.writeFile(file)
}

func (r *PlayerRepo) readFile() (playersFile, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return playersFile{Players: map[string]playerRecord{}}, nil
		}
		return playersFile{}, fmt.Errorf("%w: read %s: %v", ports.ErrStorageCorrupt, r.path, err)
	}
	var file playersFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return playersFile{}, fmt.Errorf("%w: parse %s: %v", ports.ErrStorageCorrupt, r.path, err)
	}
	if file.Players == nil {
		file.Players = map[string]playerRecord{}
	}
	return file, nil
}

func (r *PlayerRepo) writeFile(file playersFile) error {
	raw, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("%w: encode players: %v", ports.ErrStorageWrite, err)
	}
	if err := writeFileAtomic(r.path, raw); err != nil {
		return fmt.Errorf("%w: commit %s: %v", ports.ErrStorageWrite, r.path, err)
	}
	return nil
}

func toRecord(p cultivation.Player) playerRecord {
	return playerRecord{
		ID:                p.ID,
		Name:              p.Name,
		RegisteredAt:      p.RegisteredAt.UTC(),
		LastTickAt:        p.LastTickAt.UTC(),
		Realm:             string(p.Realm),
		Stage:             string(p.Stage),
		Experience:        p.Experience,
		MinutesCultivated: p.MinutesCultivated,
		BattleStats: battleStatsRow{
			EnemiesDefeated:      p.BattleStats.EnemiesDefeated,
			TribulationsSurvived: p.BattleStats.TribulationsSurvived,
		},
		Version: p.Version,
	}
}

func toDomain(rec playerRecord) cultivation.Player {
	return cultivation.Player{
		ID:                rec.ID,
		Name:              rec.Name,
		RegisteredAt:      rec.RegisteredAt,
		LastTickAt:        rec.LastTickAt,
		Realm:             cultivation.Realm(rec.Realm),
		Stage:             cultivation.Stage(rec.Stage),
		Experience:        rec.Experience,
		MinutesCultivated: rec.MinutesCultivated,
		BattleStats: cultivation.BattleStats{
			EnemiesDefeated:      rec.BattleStats.EnemiesDefeated,
			TribulationsSurvived: rec.BattleStats.TribulationsSurvived,
		},
		Version: rec.Version,
	}
}
