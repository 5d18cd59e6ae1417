package ports

// CatchMetrics records gameplay KPI counters for catch attempts.
type CatchMetrics interface {
	RecordSuccess(result string)
	RecordConflict()
	RecordFailure()
}
