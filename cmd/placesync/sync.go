package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/auphere/placesync/internal/config"
	"github.com/auphere/placesync/internal/exitcode"
	"github.com/auphere/placesync/internal/logging"
	"github.com/auphere/placesync/internal/model"
	"github.com/auphere/placesync/internal/placesapi"
	"github.com/auphere/placesync/internal/render"
	"github.com/auphere/placesync/internal/syncer"
)

var typesFile string

var syncCmd = &cobra.Command{
	Use:   "sync [type-id ...]",
	Short: "Run a sync pass over the catalog (or the given type ids)",
	Long: "Runs one sequential sync pass: health check, one admin sync call per\n" +
		"place type with a pacing delay between calls, and a final report with\n" +
		"before/after stats. Type ids not in the catalog are skipped.",
	RunE: runSync,
}

func init() {
	f := syncCmd.Flags()
	f.StringVar(&cfg.City, "city", config.DefaultCity, "City to sync")
	f.DurationVar(&cfg.Pace, "pace", config.DefaultPace, "Delay between sync calls")
	f.DurationVar(&cfg.SyncTimeout, "sync-timeout", config.DefaultSyncTimeout, "Timeout per sync call")
	f.StringVar(&typesFile, "types-file", "", "YAML file selecting a subset of place types")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, verbose)

	if err := cfg.LoadEnv(); err != nil {
		log.Error().Err(err).Msg("environment loading failed")
		os.Exit(exitcode.Fatal)
	}
	if typesFile != "" {
		if err := cfg.LoadTypesFile(typesFile); err != nil {
			log.Error().Err(err).Msg("types file loading failed")
			os.Exit(exitcode.Fatal)
		}
	}
	if len(args) > 0 {
		cfg.PlaceTypes = append(cfg.PlaceTypes, args...)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.Fatal)
	}
	if cfg.GoogleKey == "" {
		log.Warn().Msg(config.EnvGooglePlaces + " is not set; the service needs it to reach Google Places")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := placesapi.New(cfg.BaseURL, cfg.AdminToken, cfg.SyncTimeout, log)

	fmt.Println(render.Header(cfg.City, len(model.FilterPlaceTypes(cfg.PlaceTypes))))

	rep, err := syncer.Run(ctx, client, log, syncer.Options{
		City:  cfg.City,
		Types: cfg.PlaceTypes,
		Pace:  cfg.Pace,
		OnOutcome: func(o model.SyncOutcome) {
			fmt.Println(render.OutcomeLine(o))
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, syncer.ErrServiceUnavailable):
			log.Error().Str("base_url", cfg.BaseURL).Msg("service is not reachable; is auphere-places running?")
		case errors.Is(err, syncer.ErrInterrupted):
			log.Error().Msg("interrupted, no report produced")
		default:
			log.Error().Err(err).Msg("sync pass failed")
		}
		os.Exit(exitcode.Fatal)
	}

	if rep.Before != nil {
		fmt.Println(render.StatsTable("📊 Before sync", rep.Before))
	}
	fmt.Println(render.ResultsTable(rep.Outcomes))
	if rep.After != nil {
		fmt.Println(render.StatsTable("📊 After sync", rep.After))
	}
	fmt.Println(render.Summary(rep))
	return nil
}
