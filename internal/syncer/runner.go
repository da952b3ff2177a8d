// Package syncer drives a full sync pass: health gate, per-type sync calls
// with pacing, before/after stats, and report assembly. It is the only
// package with sequencing or error-isolation policy.
package syncer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/auphere/placesync/internal/model"
	"github.com/auphere/placesync/internal/placesapi"
	"github.com/auphere/placesync/internal/report"
)

// Fatal run terminations. Per-type failures are never fatal; these two are.
var (
	// ErrServiceUnavailable means the health probe failed before any type
	// was attempted.
	ErrServiceUnavailable = errors.New("places service unavailable")
	// ErrInterrupted means the context was canceled mid-run; no report is
	// produced.
	ErrInterrupted = errors.New("sync interrupted")
)

// Service is the slice of the places API the runner needs.
type Service interface {
	CheckHealth(ctx context.Context) bool
	SyncType(ctx context.Context, city string, req placesapi.SyncRequest) placesapi.SyncResult
	FetchStats(ctx context.Context) (*model.StatsSnapshot, bool)
}

// Options configures one sync pass.
type Options struct {
	City string
	// Types restricts the catalog to these ids; empty selects everything.
	// Unknown ids match no catalog entry and are skipped without error.
	Types []string
	// Pace is the delay between consecutive sync calls. The external API is
	// rate-sensitive, so the loop is deliberately sequential and throttled.
	Pace time.Duration
	// Sleep replaces the pacing wait; nil uses a context-aware real sleep.
	// Tests inject a recorder here so pacing is checked without waiting.
	Sleep func(ctx context.Context, d time.Duration) error
	// UnitPriceUSD overrides the per-request cost estimate; zero keeps the
	// default.
	UnitPriceUSD float64
	// OnOutcome, when set, is called after each type finishes, for live
	// progress output.
	OnOutcome func(model.SyncOutcome)
}

// Run executes a full pass and returns the consolidated report. Only a
// failed health probe or an interrupt abort the run; each type's failure is
// recorded in the outcome log and the loop moves on.
func Run(ctx context.Context, svc Service, log zerolog.Logger, opts Options) (*model.RunReport, error) {
	runID := uuid.New().String()
	sleep := opts.Sleep
	if sleep == nil {
		sleep = realSleep
	}

	log.Info().Str("run_id", runID).Str("city", opts.City).Msg("checking service health")
	if !svc.CheckHealth(ctx) {
		return nil, ErrServiceUnavailable
	}

	types := model.FilterPlaceTypes(opts.Types)
	log.Info().Int("types", len(types)).Msg("service healthy, starting sync pass")

	before, ok := svc.FetchStats(ctx)
	if !ok {
		log.Warn().Msg("initial stats unavailable")
		before = nil
	}

	startedAt := time.Now()
	outcomes := make([]model.SyncOutcome, 0, len(types))

	for _, pt := range types {
		if ctx.Err() != nil {
			return nil, ErrInterrupted
		}

		typeStart := time.Now()
		res := svc.SyncType(ctx, opts.City, placesapi.SyncRequest{
			PlaceType:  pt.ID,
			CellSizeKm: pt.CellSizeKm,
			RadiusM:    pt.RadiusM,
		})
		elapsed := time.Since(typeStart)

		// A failure caused by cancellation is the interrupt path, not a
		// per-type outcome.
		if ctx.Err() != nil {
			return nil, ErrInterrupted
		}

		outcome := model.SyncOutcome{
			TypeID:    pt.ID,
			Label:     pt.Label,
			Icon:      pt.Icon,
			Succeeded: res.OK,
			Duration:  elapsed,
		}
		if res.OK {
			outcome.Created = res.Created
			outcome.Skipped = res.Skipped
			outcome.APIRequests = res.APIRequests
			log.Info().
				Str("type", pt.ID).
				Int("created", res.Created).
				Int("skipped", res.Skipped).
				Int("api_requests", res.APIRequests).
				Str("duration", elapsed.String()).
				Msg("type synced")
		} else {
			outcome.Error = res.Message
			log.Error().
				Str("type", pt.ID).
				Int("status", res.StatusCode).
				Str("error", res.Message).
				Msg("type sync failed")
		}

		outcomes = append(outcomes, outcome)
		if opts.OnOutcome != nil {
			opts.OnOutcome(outcome)
		}

		if err := sleep(ctx, opts.Pace); err != nil {
			return nil, ErrInterrupted
		}
	}

	after, ok := svc.FetchStats(ctx)
	if !ok {
		log.Warn().Msg("final stats unavailable")
		after = nil
	}

	rep := report.Build(report.Input{
		RunID:        runID,
		City:         opts.City,
		StartedAt:    startedAt,
		Outcomes:     outcomes,
		Before:       before,
		After:        after,
		UnitPriceUSD: opts.UnitPriceUSD,
	})

	log.Info().
		Str("run_id", runID).
		Int("created", rep.Totals.Created).
		Int("skipped", rep.Totals.Skipped).
		Int("api_requests", rep.Totals.APIRequests).
		Int("failed", rep.FailedCount()).
		Str("duration", rep.Totals.Duration.String()).
		Msg("sync pass complete")

	return rep, nil
}

// realSleep waits d or until the context is canceled.
func realSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
