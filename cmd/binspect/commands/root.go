// Package commands implements the binspect CLI.
package commands

import (
	"fmt"

	"github.com/dverbeek/binspect/internal/logger"
	"github.com/dverbeek/binspect/pkg/config"
	"github.com/spf13/cobra"
)

// Version info set by main from ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	configFile string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "binspect",
	Short: "Inspect binary container files",
	Long: `binspect reads binary container files with the binstream toolkit:
it scans for magic numbers, hex-dumps bounded windows and decodes
embedded text in ISO-8859-1, UTF-8 or UTF-16.

Examples:
  # Find every ID3 signature in a file
  binspect scan song.mp3 --magic 0x494433 --width 3

  # Decode a null-terminated UTF-16 string at offset 24
  binspect strings song.mp3 --offset 24 --length 64 --encoding utf16 --zstring

  # Hex dump 32 bytes at offset 128
  binspect dump song.mp3 --offset 128 --length 32`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(stringsCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and initializes the logger before any
// subcommand runs. Flags win over config file and environment.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("binspect %s (commit %s, built %s)\n", Version, Commit, Date)
	},
}
