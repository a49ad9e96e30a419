package ports

// TickMetrics records tick scheduler outcomes.
type TickMetrics interface {
	RecordCycle(playersSettled int)
	RecordTicksApplied(ticks int64)
	RecordStageAdvance()
	RecordCommitFailure()
}
