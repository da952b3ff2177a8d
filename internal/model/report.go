package model

import "time"

// RunTotals aggregates the successful outcomes of one sync pass. Failed
// outcomes contribute nothing to any field.
type RunTotals struct {
	Created          int
	Skipped          int
	APIRequests      int
	Duration         time.Duration
	EstimatedCostUSD float64
}

// RunReport is the consolidated result of a full sync pass.
type RunReport struct {
	RunID     string
	City      string
	StartedAt time.Time
	Outcomes  []SyncOutcome
	Before    *StatsSnapshot // nil when the initial stats fetch failed
	After     *StatsSnapshot // nil when the final stats fetch failed
	Totals    RunTotals
}

// FailedCount returns the number of outcomes that did not succeed.
func (r *RunReport) FailedCount() int {
	var n int
	for _, o := range r.Outcomes {
		if !o.Succeeded {
			n++
		}
	}
	return n
}
