package config

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/trssantos/wellness-tracker-sub005/internal/technique"
)

var (
	// Bounds for the minimum recordable focus time.
	minRecordTimeFloor   = 0 * time.Second
	minRecordTimeCeiling = 60 * time.Minute

	minAITimeout = 1 * time.Second
	maxAITimeout = 5 * time.Minute

	aiProviders = []string{"openai", "gemini"}
)

// Validate performs validation checks on the Config struct and its fields.
// A zero Config from a test or from flags alone is not validated.
func (c *Config) Validate() error {
	if c.System.ConfigPath == "" {
		return nil
	}

	if err := c.validateFocus(); err != nil {
		return err
	}

	if err := c.validateAI(); err != nil {
		return err
	}

	return c.validateLog()
}

func (c *Config) validateFocus() error {
	if _, ok := technique.Lookup(c.Focus.Technique); !ok {
		return errUnknownTechnique.Fmt(c.Focus.Technique)
	}

	if c.Focus.MinRecordTime < minRecordTimeFloor ||
		c.Focus.MinRecordTime > minRecordTimeCeiling {
		return errInvalidMinRecordTime.Fmt(minRecordTimeFloor, minRecordTimeCeiling)
	}

	return nil
}

func (c *Config) validateAI() error {
	c.AI.Provider = strings.ToLower(strings.TrimSpace(c.AI.Provider))

	if !slices.Contains(aiProviders, c.AI.Provider) {
		return errUnknownProvider.Fmt(c.AI.Provider)
	}

	if c.AI.Timeout < minAITimeout || c.AI.Timeout > maxAITimeout {
		return errInvalidTimeout.Fmt(minAITimeout, maxAITimeout)
	}

	return nil
}

func (c *Config) validateLog() error {
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}

	if c.Log.MaxSize < 1 {
		return errInvalidLogSize
	}

	return nil
}

// ParseLogLevel converts a configured level name into a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level

	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return l, errInvalidLogLevel.Fmt(level)
	}

	return l, nil
}
