package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/auphere/placesync/internal/exitcode"
	"github.com/auphere/placesync/internal/logging"
	"github.com/auphere/placesync/internal/placesapi"
	"github.com/auphere/placesync/internal/render"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the service's current place counts",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, verbose)

	if err := cfg.LoadEnv(); err != nil {
		log.Error().Err(err).Msg("environment loading failed")
		os.Exit(exitcode.Fatal)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.Fatal)
	}

	client := placesapi.New(cfg.BaseURL, cfg.AdminToken, 0, log)
	snap, ok := client.FetchStats(context.Background())
	if !ok {
		log.Error().Str("base_url", cfg.BaseURL).Msg("stats unavailable")
		os.Exit(exitcode.Fatal)
	}

	fmt.Println(render.StatsTable("📊 Current stats", snap))
	fmt.Printf("Total places: %d\n", snap.TotalPlaces())
	return nil
}
