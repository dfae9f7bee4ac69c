// Package config loads netconvert settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/logger"
)

// EnvPrefix prefixes every environment variable, e.g. NETCONVERT_CONVERT_WORKERS.
const EnvPrefix = "NETCONVERT"

// Output formats.
const (
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// Config represents the complete application configuration.
type Config struct {
	Logging logger.Config `yaml:"logging"`
	Convert ConvertConfig `yaml:"convert"`
}

// ConvertConfig controls the conversion pipeline.
type ConvertConfig struct {
	// Workers bounds how many input files are processed at once.
	Workers int `yaml:"workers"`
	// Rank enables the Pareto ranking of tables with a volume column.
	Rank bool `yaml:"rank"`
	// Chart adds a Pareto chart to ranked sheets.
	Chart bool `yaml:"chart"`
	// Format is the output format: xlsx or json.
	Format string `yaml:"format"`
	// SchemaFile is an optional YAML protocol catalog.
	SchemaFile string `yaml:"schema_file" split_words:"true"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: logger.DefaultConfig(),
		Convert: ConvertConfig{
			Workers: runtime.GOMAXPROCS(0),
			Rank:    true,
			Format:  FormatXLSX,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (when
// path is not empty) and NETCONVERT_* environment variables, in that order of
// increasing precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays the YAML file at filePath onto cfg.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate normalizes the output format and checks every setting.
func (c *Config) Validate() error {
	c.Convert.Format = strings.ToLower(strings.TrimSpace(c.Convert.Format))
	switch c.Convert.Format {
	case FormatXLSX, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q (must be %s or %s)", c.Convert.Format, FormatXLSX, FormatJSON)
	}

	if c.Convert.Workers < 1 {
		return errors.New("workers must be at least 1")
	}

	switch c.Logging.Output {
	case "", "stdout", "stderr":
	default:
		return fmt.Errorf("invalid log output %q (must be stdout or stderr)", c.Logging.Output)
	}

	return nil
}
