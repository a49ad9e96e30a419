package gormrepo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"heavenearth/internal/adapter/repo/gorm/model"
)

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Migrate brings the schema up to date for all persisted models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Player{}, &model.CalendarState{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
