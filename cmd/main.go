package main

import (
	"adsync/internal/config"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adsync",
	Short: "Campaign synchronization core",
	Long: `adsync mirrors campaigns of an external advertising platform into a local
store, relays user mutations back to the platform and guards every entry
point with fixed-window admission policies.

Configuration is read from the environment (HTTP_, LOG_, STORE_, PSQL_,
REDIS_, RATELIMIT_, PLATFORM_ and AUTH_ prefixes).`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd(), migrateCmd(), syncCmd(), seedCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and builds the structured logger every
// command logs through.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
