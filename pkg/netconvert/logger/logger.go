// Package logger provides structured logging using zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

var globalLogger zerolog.Logger

// Config configures the global logger.
type Config struct {
	Level      string `json:"level" yaml:"level"`
	Debug      bool   `json:"debug" yaml:"debug"`
	Output     string `json:"output" yaml:"output"`
	Format     string `json:"format" yaml:"format"`
	TimeFormat string `json:"time_format" yaml:"time_format" split_words:"true"`
}

func init() {
	globalLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = time.RFC3339
}

// DefaultConfig returns console logging at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Output: "stderr",
		Format: FormatConsole,
	}
}

// New builds a logger writing to w according to config.
func New(config Config, w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", config.Level, err)
		}
	}

	switch config.Format {
	case "", FormatJSON:
	case FormatConsole:
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
		if config.TimeFormat != "" {
			cw.TimeFormat = config.TimeFormat
		}
		w = cw
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", config.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Init replaces the global logger.
func Init(config Config) error {
	var output io.Writer = os.Stderr
	if config.Output == "stdout" {
		output = os.Stdout
	}

	if config.TimeFormat != "" && config.Format != FormatConsole {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	l, err := New(config, output)
	if err != nil {
		return err
	}
	globalLogger = l
	log.Logger = globalLogger

	return nil
}

// GetLogger returns the global logger.
func GetLogger() zerolog.Logger {
	return globalLogger
}

// Info starts an info-level event on the global logger.
func Info() *zerolog.Event {
	return globalLogger.Info()
}

// WithComponent returns a child of the global logger tagged with component.
func WithComponent(component string) zerolog.Logger {
	return globalLogger.With().Str("component", component).Logger()
}

// NewTestLogger returns a logger that discards everything.
func NewTestLogger() zerolog.Logger {
	return zerolog.Nop()
}
