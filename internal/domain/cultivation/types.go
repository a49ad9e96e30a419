package cultivation

import "time"

// Realm is the top-level progression tier. Only the first realm is active;
// the rest are carried as data so re-enabling them is a table change.
type Realm string

const (
	RealmQiCondensation          Realm = "Qi Condensation"
	RealmFoundationEstablishment Realm = "Foundation Establishment"
	RealmCoreFormation           Realm = "Core Formation"
	RealmNascentSoul             Realm = "Nascent Soul"
	RealmSoulTransformation      Realm = "Soul Transformation"
	RealmVoidRefinement          Realm = "Void Refinement"
	RealmBodyIntegration         Realm = "Body Integration"
	RealmGreatAscension          Realm = "Great Ascension"
)

// Stage is an ordered sub-level within a realm.
type Stage string

const (
	StageInitial Stage = "Initial"
	StageEarly   Stage = "Early"
	StageMiddle  Stage = "Middle"
	StageLate    Stage = "Late"
	StagePeak    Stage = "Peak"
)

type BattleStats struct {
	EnemiesDefeated      int `json:"enemies_defeated"`
	TribulationsSurvived int `json:"tribulations_survived"`
}

// Player is the per-character aggregate. The tick scheduler is its sole
// writer; everything else reads committed snapshots.
type Player struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
	LastTickAt   time.Time `json:"last_tick_at"`
	Realm        Realm     `json:"realm"`
	Stage        Stage     `json:"stage"`
	Experience   float64   `json:"experience"`
	// MinutesCultivated counts applied ticks, one real-time minute each.
	MinutesCultivated int64       `json:"minutes_cultivated"`
	BattleStats       BattleStats `json:"battle_stats"`
	Version           int64       `json:"version"`
}

// HoursCultivated is the derived view of total time spent cultivating.
func (p Player) HoursCultivated() float64 {
	return float64(p.MinutesCultivated) / 60
}

// NewPlayer creates a freshly registered cultivator at the first stage of
// the first realm, with both timestamps anchored to now.
func NewPlayer(id, name string, now time.Time) Player {
	return Player{
		ID:           id,
		Name:         name,
		RegisteredAt: now,
		LastTickAt:   now,
		Realm:        RealmQiCondensation,
		Stage:        StageInitial,
		Version:      1,
	}
}

// Advancement describes one stage crossing produced by the engine.
type Advancement struct {
	Realm Realm
	Stage Stage
}

func (a Advancement) Note() string {
	return "Advanced to " + string(a.Stage) + " stage of " + string(a.Realm) + "."
}
