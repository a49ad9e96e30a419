package cultivation

import "time"

const secondsPerYear = 365 * 24 * 60 * 60

// AgeYears converts the span since registration into in-game years.
func AgeYears(p Player, now time.Time) float64 {
	elapsed := now.Sub(p.RegisteredAt).Seconds()
	if elapsed < 0 {
		return 0
	}
	return elapsed / secondsPerYear
}

// RemainingLifespanYears is the realm lifespan minus current age, floored
// at zero.
func (t ProgressionTable) RemainingLifespanYears(p Player, now time.Time) float64 {
	remaining := t.LifespanYears(p.Realm) - AgeYears(p, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
