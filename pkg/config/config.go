// Package config loads binspect tool configuration.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (BINSPECT_*)
//  2. Configuration file
//  3. Default values
//
// The toolkit itself is configuration-free; this covers the CLI's
// ambient concerns only (logging today).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the binspect CLI configuration.
type Config struct {
	// Logging controls diagnostic log output.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig controls log output behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // DEBUG, INFO, WARN, ERROR
	Format string `mapstructure:"format" yaml:"format"` // text, json
	Output string `mapstructure:"output" yaml:"output"` // stdout, stderr, or file path
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load loads configuration from file, environment, and defaults. An
// empty configPath means "no file": defaults plus environment only. A
// named file that does not exist is an error; other read failures
// propagate as-is.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// BINSPECT_LOGGING_LEVEL=DEBUG overrides logging.level
	v.SetEnvPrefix("BINSPECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output", def.Logging.Output)

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("configuration file not found: %s", configPath)
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)
	return &cfg, nil
}
