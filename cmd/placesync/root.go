package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/auphere/placesync/internal/config"
	"github.com/auphere/placesync/internal/exitcode"
)

var (
	cfg     config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "placesync",
	Short: "Drive the auphere-places sync endpoint across the place-type catalog",
	Long: "placesync walks a fixed catalog of Google Places types and calls the\n" +
		"auphere-places admin sync endpoint once per type, then reports what changed.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.BaseURL, "base-url", "", "Service base URL (or set PLACES_BASE_URL; default "+config.DefaultBaseURL+")")
	pf.StringVar(&cfg.AdminToken, "admin-token", "", "Admin token (or set ADMIN_TOKEN)")
	pf.StringVar(&cfg.EnvFile, "env-file", "", "Path to a .env file (default ./.env when present)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.Fatal)
	}
}
