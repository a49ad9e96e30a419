package inmemory

import "sync"

// Snapshot is the read-only view served at /ops/metrics.
type Snapshot struct {
	Cycles         uint64 `json:"cycles"`
	PlayersSettled uint64 `json:"players_settled"`
	TicksApplied   uint64 `json:"ticks_applied"`
	StageAdvances  uint64 `json:"stage_advances"`
	CommitFailures uint64 `json:"commit_failures"`
}

// Recorder accumulates tick scheduler counters in memory.
type Recorder struct {
	mu             sync.Mutex
	cycles         uint64
	playersSettled uint64
	ticksApplied   uint64
	stageAdvances  uint64
	commitFailures uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordCycle(playersSettled int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cycles++
	if playersSettled > 0 {
		r.playersSettled += uint64(playersSettled)
	}
}

func (r *Recorder) RecordTicksApplied(ticks int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ticks > 0 {
		r.ticksApplied += uint64(ticks)
	}
}

func (r *Recorder) RecordStageAdvance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stageAdvances++
}

func (r *Recorder) RecordCommitFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commitFailures++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Cycles:         r.cycles,
		PlayersSettled: r.playersSettled,
		TicksApplied:   r.ticksApplied,
		StageAdvances:  r.stageAdvances,
		CommitFailures: r.commitFailures,
	}
}
