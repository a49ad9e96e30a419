package cultivation

import (
	"testing"
	"time"
)

func TestAgeYears(t *testing.T) {
	registered := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPlayer("player-1", "Su Ming", registered)

	if got := AgeYears(p, registered.Add(365*24*time.Hour)); got != 1 {
		t.Fatalf("expected age 1 year, got %v", got)
	}
	if got := AgeYears(p, registered.Add(-time.Hour)); got != 0 {
		t.Fatalf("age before registration should floor at 0, got %v", got)
	}
}

func TestRemainingLifespanNeverNegative(t *testing.T) {
	table := DefaultProgression()
	registered := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPlayer("player-1", "Su Ming", registered)

	farFuture := registered.AddDate(1000, 0, 0)
	if got := table.RemainingLifespanYears(p, farFuture); got != 0 {
		t.Fatalf("expected 0 remaining lifespan, got %v", got)
	}

	remaining := table.RemainingLifespanYears(p, registered)
	if remaining != table.LifespanYears(RealmQiCondensation) {
		t.Fatalf("expected full lifespan at registration, got %v", remaining)
	}
}
