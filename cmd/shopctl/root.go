package main

import (
	"context"
	"fmt"

	"shopassist/internal/app"
	"shopassist/internal/config"
	"shopassist/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	catalogPath string
	verbose     bool
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Shopping assistant from the terminal",
	Long: `shopctl runs the rule-based shopping assistant locally: chat through the
guided flow, search the catalog directly, or compare two products.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
		level := "warn"
		if verbose {
			level = "debug"
		}
		logger.Setup(logger.Config{Level: level, Format: "console", Output: cmd.ErrOrStderr()})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "CSV catalog path (overrides CATALOG_CSV)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// loadApp builds the services from the environment with an in-memory session store
func loadApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if catalogPath != "" {
		cfg.Catalog.CSVPath = catalogPath
	}
	cfg.Session.Backend = "memory"

	return app.New(ctx, cfg)
}
