package cultivation

const (
	// SecondsPerTick is the real-time length of one in-game day.
	SecondsPerTick = 60

	// TicksPerHour converts applied ticks into cultivated hours: one tick
	// is one real-time minute.
	TicksPerHour = 60
)

// Engine is the pure cultivation state-transition function. It performs no
// I/O and never reads the wall clock; the scheduler owns time.
type Engine struct {
	Table       ProgressionTable
	GainPerTick float64
}

func NewEngine(table ProgressionTable, gainPerTick float64) Engine {
	if gainPerTick <= 0 {
		gainPerTick = 1.0
	}
	if table.Realms == nil {
		table = DefaultProgression()
	}
	return Engine{Table: table, GainPerTick: gainPerTick}
}

// ApplyTicks advances a player by n in-game days and returns the updated
// aggregate plus one Advancement per stage crossed. Ticks below Peak are
// applied one at a time so any split of a window into batches settles to
// the same bits as a single call; the loop is bounded by the experience
// needed to reach Peak, not by n, because Peak absorbs the rest in one
// step. LastTickAt is untouched; the caller owns it.
func (e Engine) ApplyTicks(p Player, n int64) (Player, []Advancement) {
	if n <= 0 {
		return p, nil
	}
	gain := e.GainPerTick
	if gain <= 0 {
		gain = 1.0
	}

	remaining := n
	var advances []Advancement
	for remaining > 0 && !FinalStage(p.Stage) {
		p.Experience += gain
		p.MinutesCultivated++
		remaining--

		if required := e.Table.RequiredExp(p.Realm, p.Stage); p.Experience >= required {
			p.Experience -= required
			p.Stage = StageOrder[stageIndex(p.Stage)+1]
			advances = append(advances, Advancement{Realm: p.Realm, Stage: p.Stage})
		}
	}

	if remaining > 0 {
		// Peak is absorbing: cultivation still accrues time, but no
		// experience past the final threshold.
		p.MinutesCultivated += remaining
	}
	if FinalStage(p.Stage) {
		if threshold := e.Table.RequiredExp(p.Realm, p.Stage); p.Experience >= threshold {
			p.Experience = threshold - 1
		}
	}
	return p, advances
}

// TicksUntilNextStage reports how many more ticks reach the current stage
// threshold. ok is false at the final stage, where no crossing remains.
func (e Engine) TicksUntilNextStage(p Player) (float64, bool) {
	if FinalStage(p.Stage) {
		return 0, false
	}
	gain := e.GainPerTick
	if gain <= 0 {
		gain = 1.0
	}
	need := e.Table.RequiredExp(p.Realm, p.Stage) - p.Experience
	if need <= 0 {
		return 0, true
	}
	return need / gain, true
}
