package tick

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"heavenearth/internal/app/ports"
	"heavenearth/internal/domain/cultivation"
)

// Scheduler converts wall time into discrete in-game days and applies them
// to every known player. It is the sole writer of player records: one
// settle, one commit, per player per cycle.
type Scheduler struct {
	Players  ports.PlayerRepository
	Engine   cultivation.Engine
	Clock    ports.Clock
	Interval time.Duration
	Logger   *zap.Logger
	Metrics  ports.TickMetrics
}

// CatchUp settles the in-game days that elapsed while the process was not
// running. Called once at startup, before Run.
func (s *Scheduler) CatchUp(ctx context.Context) error {
	return s.runCycle(ctx)
}

// Run drives the live loop: one cycle per interval until ctx is cancelled.
// Cancellation takes effect between settles, never mid-batch, so every
// record is either fully advanced for a cycle or not advanced at all.
func (s *Scheduler) Run(ctx context.Context) error {
	interval := s.interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger().Info("tick scheduler running", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			s.logger().Info("tick scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := s.runCycle(ctx); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				// Load failures are cycle-fatal but loop-survivable;
				// the next interval retries from committed state.
				s.logger().Error("tick cycle failed", zap.Error(err))
			}
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) error {
	now := s.Clock.Now()
	players, err := s.Players.LoadAll(ctx)
	if err != nil {
		return err
	}

	settled := 0
	for _, p := range players {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if s.settle(ctx, p, now) {
			settled++
		}
	}
	s.metrics().RecordCycle(settled)
	return nil
}

// settle applies every fully elapsed interval since the player's last
// applied day as one batched engine call. LastTickAt advances by whole
// intervals only, preserving the sub-interval remainder for the next cycle.
// A failed commit leaves the committed record untouched; the same window
// replays next cycle with an identical result.
func (s *Scheduler) settle(ctx context.Context, p cultivation.Player, now time.Time) bool {
	elapsed := int64(now.Sub(p.LastTickAt) / s.interval())
	if elapsed <= 0 {
		return false
	}

	updated, advances := s.Engine.ApplyTicks(p, elapsed)
	updated.LastTickAt = p.LastTickAt.Add(time.Duration(elapsed) * s.interval())
	updated.Version = p.Version + 1

	if err := s.Players.Save(ctx, updated); err != nil {
		s.metrics().RecordCommitFailure()
		s.logger().Warn("commit failed, retrying next cycle",
			zap.String("player_id", p.ID),
			zap.Int64("ticks", elapsed),
			zap.Error(err))
		return false
	}

	s.metrics().RecordTicksApplied(elapsed)
	for _, a := range advances {
		s.metrics().RecordStageAdvance()
		s.logger().Info("stage advanced",
			zap.String("player_id", p.ID),
			zap.String("player", p.Name),
			zap.String("note", a.Note()))
	}
	if elapsed > 1 {
		s.logger().Info("offline days settled",
			zap.String("player_id", p.ID),
			zap.Int64("ticks", elapsed),
			zap.Int("stage_advances", len(advances)))
	}
	return true
}

func (s *Scheduler) interval() time.Duration {
	if s.Interval <= 0 {
		return cultivation.SecondsPerTick * time.Second
	}
	return s.Interval
}

func (s *Scheduler) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *Scheduler) metrics() ports.TickMetrics {
	if s.Metrics == nil {
		return nopMetrics{}
	}
	return s.Metrics
}

type nopMetrics struct{}

func (nopMetrics) RecordCycle(int) {}

func (nopMetrics) RecordTicksApplied(int64) {}

func (nopMetrics) RecordStageAdvance() {}

func (nopMetrics) RecordCommitFailure() {}
