package profile

import "heavenearth/internal/domain/cultivation"

type Request struct {
	PlayerID string
}

// Response is a committed player snapshot plus the derived values the UI
// layer renders; nothing here is persisted.
type Response struct {
	Player                 cultivation.Player `json:"player"`
	HoursCultivated        float64            `json:"hours_cultivated"`
	AgeYears               float64            `json:"age_years"`
	RemainingLifespanYears float64            `json:"remaining_lifespan_years"`
	RequiredExp            float64            `json:"required_exp"`
	TicksUntilNextStage    float64            `json:"ticks_until_next_stage"`
	HoursUntilNextStage    float64            `json:"hours_until_next_stage"`
	AtFinalStage           bool               `json:"at_final_stage"`
	WorldDate              string             `json:"world_date"`
}
