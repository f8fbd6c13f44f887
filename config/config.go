// Package config holds the options of a markdown to HTML conversion.
package config

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrLoggingLevelInvalid  = errors.New("mdtree config: logging level is invalid")
	ErrLoggingFormatInvalid = errors.New("mdtree config: logging format is invalid")
)

var (
	logLevels  = []interface{}{"trace", "debug", "info", "warn", "warning", "error", "fatal"}
	logFormats = []interface{}{"json", "console", "pretty"}
)

// Config controls how a document is converted and written.
type Config struct {
	// Standalone wraps the rendered body in a complete html page.
	Standalone bool
	// FrontMatter strips a leading YAML or TOML block and uses its title.
	FrontMatter bool
	// Sanitize runs the rendered body through a user generated content policy.
	Sanitize bool
	Minify   bool
	Logging  LoggingConfig
}

type LoggingConfig struct {
	Level  string
	Format string
}

func DefaultConfig() Config {
	return Config{
		Standalone:  true,
		FrontMatter: true,
		Logging: LoggingConfig{
			Level:  "error",
			Format: "console",
		},
	}
}

// Validate checks the logging options. Empty values are accepted and mean
// the logger's defaults.
func (cfg Config) Validate() error {
	level := strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if err := validation.Validate(level, validation.In(logLevels...)); err != nil {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, cfg.Logging.Level)
	}
	format := strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if err := validation.Validate(format, validation.In(logFormats...)); err != nil {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, cfg.Logging.Format)
	}
	return nil
}
