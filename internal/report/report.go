// Package report turns an outcome log and stats snapshots into a RunReport.
// It is pure: no IO, no clock reads beyond the inputs it is handed.
package report

import (
	"time"

	"github.com/auphere/placesync/internal/model"
)

// UnitPriceUSD is the billed price of one Google Places API request, used
// for the run's cost estimate.
const UnitPriceUSD = 0.017

// Input carries everything Build needs.
type Input struct {
	RunID        string
	City         string
	StartedAt    time.Time
	Outcomes     []model.SyncOutcome
	Before       *model.StatsSnapshot
	After        *model.StatsSnapshot
	UnitPriceUSD float64 // zero selects UnitPriceUSD
}

// Build computes the run totals over the successful outcomes. Failed
// outcomes stay in the log but contribute nothing to any total, duration
// included. The cost estimate is exactly total requests times the unit
// price, with no separate computation path.
func Build(in Input) *model.RunReport {
	price := in.UnitPriceUSD
	if price == 0 {
		price = UnitPriceUSD
	}

	var totals model.RunTotals
	for _, o := range in.Outcomes {
		if !o.Succeeded {
			continue
		}
		totals.Created += o.Created
		totals.Skipped += o.Skipped
		totals.APIRequests += o.APIRequests
		totals.Duration += o.Duration
	}
	totals.EstimatedCostUSD = float64(totals.APIRequests) * price

	return &model.RunReport{
		RunID:     in.RunID,
		City:      in.City,
		StartedAt: in.StartedAt,
		Outcomes:  in.Outcomes,
		Before:    in.Before,
		After:     in.After,
		Totals:    totals,
	}
}
