package inmemory

import "testing"

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordCycle(3)
	r.RecordCycle(0)
	r.RecordTicksApplied(60)
	r.RecordTicksApplied(1)
	r.RecordStageAdvance()
	r.RecordCommitFailure()

	s := r.Snapshot()
	if s.Cycles != 2 {
		t.Fatalf("expected 2 cycles, got %d", s.Cycles)
	}
	if s.PlayersSettled != 3 {
		t.Fatalf("expected 3 players settled, got %d", s.PlayersSettled)
	}
	if s.TicksApplied != 61 {
		t.Fatalf("expected 61 ticks applied, got %d", s.TicksApplied)
	}
	if s.StageAdvances != 1 {
		t.Fatalf("expected 1 stage advance, got %d", s.StageAdvances)
	}
	if s.CommitFailures != 1 {
		t.Fatalf("expected 1 commit failure, got %d", s.CommitFailures)
	}
}
