// Package cmd implements the golines command line
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/golines/internal/app"
	"github.com/philipparndt/golines/internal/config"
	"github.com/philipparndt/golines/internal/logging"
	"github.com/philipparndt/golines/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string
	watch      bool
	column     string
)

var rootCmd = &cobra.Command{
	Use:   "golines <file>",
	Short: "Instanced 2D line viewer",
	Long: `golines draws large sets of 2D polylines with one instanced draw call.
It reads text (.txt), length-prefixed binary (.bin) and CSV files with a WKT
geometry column (.csv). Drag with the left mouse button to pan, use the wheel
to zoom and press Home to fit the data.`,
	Version:      version.GetFullVersion(),
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		return app.Run(cmd.Context(), app.Options{
			Config: cfg,
			Path:   args[0],
			Log:    log,
		})
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", "", "log format: text or json")
	flags.StringVar(&column, "column", "", "CSV geometry column, header name or index")

	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the file when it changes")
}

// setup loads the configuration, applies command line overrides and builds
// the logger
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if column != "" {
		cfg.Data.Column = column
	}
	if f := cmd.Flags().Lookup("watch"); f != nil && f.Changed {
		cfg.Watch.Enabled = watch
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
