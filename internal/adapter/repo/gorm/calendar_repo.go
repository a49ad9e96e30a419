package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"heavenearth/internal/adapter/repo/gorm/model"
	"heavenearth/internal/app/ports"
)

const calendarStateKey = "global"

type CalendarRepo struct {
	db *gorm.DB
}

func NewCalendarRepo(db *gorm.DB) CalendarRepo {
	return CalendarRepo{db: db}
}

func (r CalendarRepo) LoadOrCreateStart(ctx context.Context, now time.Time) (time.Time, error) {
	var row model.CalendarState
	err := r.db.WithContext(ctx).
		Where(&model.CalendarState{StateKey: calendarStateKey}).
		First(&row).Error
	if err == nil {
		return row.StartAt, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, fmt.Errorf("%w: load calendar state: %v", ports.ErrStorageCorrupt, err)
	}

	row = model.CalendarState{
		StateKey:  calendarStateKey,
		StartAt:   now.UTC().Truncate(time.Second),
		UpdatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return time.Time{}, fmt.Errorf("%w: create calendar state: %v", ports.ErrStorageWrite, err)
	}
	return row.StartAt, nil
}
