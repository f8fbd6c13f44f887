package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.Standalone)
	assert.True(t, cfg.FrontMatter)
	assert.False(t, cfg.Sanitize)
	assert.False(t, cfg.Minify)
}

func TestValidateAcceptsEmptyLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging = LoggingConfig{}
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsInvalidLoggingLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	if !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestValidateRejectsInvalidLoggingFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	if !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestValidateIgnoresCase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " DEBUG "
	cfg.Logging.Format = "JSON"
	assert.NoError(t, cfg.Validate())
}
