package tick

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"heavenearth/internal/adapter/repo/memory"
	"heavenearth/internal/domain/cultivation"
)

type fakeClock struct {
	mu sync.Mutex
	at time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = c.at.Add(d)
}

func newScheduler(store *memory.Store, clock *fakeClock) *Scheduler {
	return &Scheduler{
		Players:  memory.NewPlayerRepo(store),
		Engine:   cultivation.NewEngine(cultivation.DefaultProgression(), 1.0),
		Clock:    clock,
		Interval: 60 * time.Second,
	}
}

func TestCatchUp_SettlesOfflineGapAsOneBatch(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	store.SeedPlayer(cultivation.NewPlayer("player-1", "Su Ming", start))

	// 3600s offline at a 60s interval is exactly 60 elapsed days.
	clock := &fakeClock{at: start.Add(3600 * time.Second)}
	s := newScheduler(store, clock)

	if err := s.CatchUp(context.Background()); err != nil {
		t.Fatalf("CatchUp error: %v", err)
	}
	got, err := s.Players.GetByID(context.Background(), "player-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Experience != 60 {
		t.Fatalf("expected 60 exp, got %v", got.Experience)
	}
	if got.MinutesCultivated != 60 {
		t.Fatalf("expected 60 minutes cultivated, got %v", got.MinutesCultivated)
	}
	if want := start.Add(3600 * time.Second); !got.LastTickAt.Equal(want) {
		t.Fatalf("expected LastTickAt %v, got %v", want, got.LastTickAt)
	}
}

func TestCatchUp_PreservesSubIntervalRemainder(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	store.SeedPlayer(cultivation.NewPlayer("player-1", "Su Ming", start))

	// 150s elapsed: 2 whole days, 30s remainder that must not be rounded
	// away.
	clock := &fakeClock{at: start.Add(150 * time.Second)}
	s := newScheduler(store, clock)

	if err := s.CatchUp(context.Background()); err != nil {
		t.Fatalf("CatchUp error: %v", err)
	}
	got, _ := s.Players.GetByID(context.Background(), "player-1")
	if got.Experience != 2 {
		t.Fatalf("expected 2 exp, got %v", got.Experience)
	}
	if want := start.Add(120 * time.Second); !got.LastTickAt.Equal(want) {
		t.Fatalf("LastTickAt should advance by whole intervals only: want %v, got %v", want, got.LastTickAt)
	}

	// 30s later the preserved remainder completes a third day.
	clock.Advance(30 * time.Second)
	if err := s.CatchUp(context.Background()); err != nil {
		t.Fatalf("second CatchUp error: %v", err)
	}
	got, _ = s.Players.GetByID(context.Background(), "player-1")
	if got.Experience != 3 {
		t.Fatalf("expected remainder to complete a third day, got %v exp", got.Experience)
	}
}

func TestCatchUp_NoElapsedIsNoop(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	seed := cultivation.NewPlayer("player-1", "Su Ming", start)
	store.SeedPlayer(seed)

	clock := &fakeClock{at: start.Add(59 * time.Second)}
	s := newScheduler(store, clock)

	if err := s.CatchUp(context.Background()); err != nil {
		t.Fatalf("CatchUp error: %v", err)
	}
	got, _ := s.Players.GetByID(context.Background(), "player-1")
	if got.Version != seed.Version {
		t.Fatalf("no-op cycle must not commit: version %d -> %d", seed.Version, got.Version)
	}
}

func TestCatchUp_BatchMatchesSequentialSingleTicks(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	batchStore := memory.NewStore()
	batchStore.SeedPlayer(cultivation.NewPlayer("player-1", "Su Ming", start))
	batchClock := &fakeClock{at: start.Add(60 * 60 * time.Second)}
	batch := newScheduler(batchStore, batchClock)
	if err := batch.CatchUp(context.Background()); err != nil {
		t.Fatalf("batch CatchUp error: %v", err)
	}

	seqStore := memory.NewStore()
	seqStore.SeedPlayer(cultivation.NewPlayer("player-1", "Su Ming", start))
	seqClock := &fakeClock{at: start}
	seq := newScheduler(seqStore, seqClock)
	for i := 0; i < 60; i++ {
		seqClock.Advance(60 * time.Second)
		if err := seq.runCycle(context.Background()); err != nil {
			t.Fatalf("sequential cycle %d error: %v", i, err)
		}
	}

	b, _ := batch.Players.GetByID(context.Background(), "player-1")
	q, _ := seq.Players.GetByID(context.Background(), "player-1")
	if b.Experience != q.Experience || b.Stage != q.Stage || b.MinutesCultivated != q.MinutesCultivated {
		t.Fatalf("batch and sequential settles diverged: batch=%+v sequential=%+v", b, q)
	}
	if !b.LastTickAt.Equal(q.LastTickAt) {
		t.Fatalf("LastTickAt diverged: batch=%v sequential=%v", b.LastTickAt, q.LastTickAt)
	}
}

type failingSaveRepo struct {
	memory.PlayerRepo
	failID string
}

func (r failingSaveRepo) Save(ctx context.Context, p cultivation.Player) error {
	if p.ID == r.failID {
		return errors.New("disk full")
	}
	return r.PlayerRepo.Save(ctx, p)
}

func TestRunCycle_FailedCommitDoesNotAbortOthers(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	store.SeedPlayer(cultivation.NewPlayer("alice", "Alice", start))
	store.SeedPlayer(cultivation.NewPlayer("bob", "Bob", start))

	clock := &fakeClock{at: start.Add(120 * time.Second)}
	s := newScheduler(store, clock)
	s.Players = failingSaveRepo{PlayerRepo: memory.NewPlayerRepo(store), failID: "alice"}

	if err := s.runCycle(context.Background()); err != nil {
		t.Fatalf("runCycle error: %v", err)
	}

	alice, _ := s.Players.GetByID(context.Background(), "alice")
	if !alice.LastTickAt.Equal(start) {
		t.Fatalf("failed commit must not advance LastTickAt, got %v", alice.LastTickAt)
	}
	bob, _ := s.Players.GetByID(context.Background(), "bob")
	if bob.Experience != 2 {
		t.Fatalf("other players must still settle, bob exp=%v", bob.Experience)
	}

	// Once the store recovers, the same window replays for alice.
	s.Players = memory.NewPlayerRepo(store)
	if err := s.runCycle(context.Background()); err != nil {
		t.Fatalf("retry cycle error: %v", err)
	}
	alice, _ = s.Players.GetByID(context.Background(), "alice")
	if alice.Experience != 2 {
		t.Fatalf("expected retried settle to apply 2 ticks, got %v exp", alice.Experience)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	store.SeedPlayer(cultivation.NewPlayer("player-1", "Su Ming", start))

	s := newScheduler(store, &fakeClock{at: start})
	s.Interval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}

func TestCatchUp_AdvancesStagesAcrossLargeGap(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	store.SeedPlayer(cultivation.NewPlayer("player-1", "Su Ming", start))

	// 350 days: Initial (100) and Early (200) crossed, 50 exp into Middle.
	clock := &fakeClock{at: start.Add(350 * 60 * time.Second)}
	s := newScheduler(store, clock)

	if err := s.CatchUp(context.Background()); err != nil {
		t.Fatalf("CatchUp error: %v", err)
	}
	got, _ := s.Players.GetByID(context.Background(), "player-1")
	if got.Stage != cultivation.StageMiddle {
		t.Fatalf("expected Middle stage, got %s", got.Stage)
	}
	if got.Experience != 50 {
		t.Fatalf("expected 50 exp carried, got %v", got.Experience)
	}
}
