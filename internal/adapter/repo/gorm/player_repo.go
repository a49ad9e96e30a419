package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"heavenearth/internal/adapter/repo/gorm/model"
	"heavenearth/internal/app/ports"
	"heavenearth/internal/domain/cultivation"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) PlayerRepo {
	return PlayerRepo{db: db}
}

func (r PlayerRepo) LoadAll(ctx context.Context) ([]cultivation.Player, error) {
	var rows []model.Player
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: load players: %v", ports.ErrStorageCorrupt, err)
	}
	out := make([]cultivation.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func (r PlayerRepo) GetByID(ctx context.Context, id string) (cultivation.Player, error) {
	var row model.Player
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cultivation.Player{}, ports.ErrNotRegistered
		}
		return cultivation.Player{}, err
	}
	return toDomain(row), nil
}

func (r PlayerRepo) Create(ctx context.Context, p cultivation.Player) error {
	row := toRow(p)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrAlreadyRegistered
		}
		var exists int64
		countErr := r.db.WithContext(ctx).Model(&model.Player{}).Where("id = ?", p.ID).Count(&exists).Error
		if countErr == nil && exists > 0 {
			return ports.ErrAlreadyRegistered
		}
		return fmt.Errorf("%w: create player %s: %v", ports.ErrStorageWrite, p.ID, err)
	}
	return nil
}

// Save commits a record guarded by the previous version so a concurrent
// writer cannot silently clobber an update.
func (r PlayerRepo) Save(ctx context.Context, p cultivation.Player) error {
	row := toRow(p)
	res := r.db.WithContext(ctx).Model(&model.Player{}).
		Where("id = ? AND version = ?", p.ID, p.Version-1).
		Updates(map[string]any{
			"name":                  row.Name,
			"last_tick_at":          row.LastTickAt,
			"realm":                 row.Realm,
			"stage":                 row.Stage,
			"experience":            row.Experience,
			"minutes_cultivated":    row.MinutesCultivated,
			"enemies_defeated":      row.EnemiesDefeated,
			"tribulations_survived": row.TribulationsSurvived,
			"version":               row.Version,
			"updated_at":            time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("%w: save player %s: %v", ports.ErrStorageWrite, p.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: save player %s: version %d not current", ports.ErrStorageWrite, p.ID, p.Version-1)
	}
	return nil
}

func toRow(p cultivation.Player) model.Player {
	return model.Player{
		ID:                   p.ID,
		Name:                 p.Name,
		RegisteredAt:         p.RegisteredAt,
		LastTickAt:           p.LastTickAt,
		Realm:                string(p.Realm),
		Stage:                string(p.Stage),
		Experience:           p.Experience,
		MinutesCultivated:    p.MinutesCultivated,
		EnemiesDefeated:      p.BattleStats.EnemiesDefeated,
		TribulationsSurvived: p.BattleStats.TribulationsSurvived,
		Version:              p.Version,
	}
}

func toDomain(row model.Player) cultivation.Player {
	return cultivation.Player{
		ID:                row.ID,
		Name:              row.Name,
		RegisteredAt:      row.RegisteredAt,
		LastTickAt:        row.LastTickAt,
		Realm:             cultivation.Realm(row.Realm),
		Stage:             cultivation.Stage(row.Stage),
		Experience:        row.Experience,
		MinutesCultivated: row.MinutesCultivated,
		BattleStats: cultivation.BattleStats{
			EnemiesDefeated:      row.EnemiesDefeated,
			TribulationsSurvived: row.TribulationsSurvived,
		},
		Version: row.Version,
	}
}
