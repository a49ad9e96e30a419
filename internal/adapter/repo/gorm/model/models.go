package model

import "time"

type Player struct {
	ID                   string `gorm:"primaryKey"`
	Name                 string
	RegisteredAt         time.Time
	LastTickAt           time.Time
	Realm                string
	Stage                string
	Experience           float64
	MinutesCultivated    int64
	EnemiesDefeated      int
	TribulationsSurvived int
	Version              int64
	UpdatedAt            time.Time
}

func (Player) TableName() string {
	return "players"
}

type CalendarState struct {
	StateKey  string `gorm:"primaryKey"`
	StartAt   time.Time
	UpdatedAt time.Time
}

func (CalendarState) TableName() string {
	return "calendar_state"
}
