// Package config loads CLI settings from bearpig.yaml and BEARPIG_*
// environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/KromDaniel/bearpig/internal/export"
)

// Config holds settings shared by the CLI commands. Command-line flags
// override these values.
type Config struct {
	Verbose       bool   `mapstructure:"verbose"`
	Color         bool   `mapstructure:"color"`
	GraphFormat   string `mapstructure:"graph_format"`
	GraphOutput   string `mapstructure:"graph_output"`
	Package       string `mapstructure:"package"`
	CodegenOutput string `mapstructure:"codegen_output"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Color:         true,
		GraphFormat:   string(export.FormatDOT),
		GraphOutput:   "nfa.dot",
		Package:       "main",
		CodegenOutput: "bearpig_gen.go",
	}
}

// Load reads the config file at path, or searches for bearpig.yaml in the
// working directory, $HOME/.bearpig and /etc/bearpig when path is empty. A
// missing file is not an error unless path was given explicitly.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("bearpig")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.bearpig")
		v.AddConfigPath("/etc/bearpig/")
	}
	v.SetConfigType("yaml")
	v.SetEnvPrefix("BEARPIG")
	v.AutomaticEnv()

	// Defaults register every key so AutomaticEnv can resolve it on Unmarshal.
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("color", cfg.Color)
	v.SetDefault("graph_format", cfg.GraphFormat)
	v.SetDefault("graph_output", cfg.GraphOutput)
	v.SetDefault("package", cfg.Package)
	v.SetDefault("codegen_output", cfg.CodegenOutput)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	if _, err := export.ParseFormat(c.GraphFormat); err != nil {
		return fmt.Errorf("invalid graph_format: %w", err)
	}
	if c.Package == "" {
		return fmt.Errorf("package must not be empty")
	}
	return nil
}
