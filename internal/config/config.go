// Package config loads the tracker configuration from the config file,
// environment, first-run prompts and command-line flags
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Focus   FocusConfig
		Display DisplayConfig
		AI      AIConfig
		Log     LogConfig
		CLI     CLIConfig
		System  SystemConfig
	}

	// FocusConfig holds focus session settings.
	FocusConfig struct {
		Technique     string
		SessionCmd    string
		MinRecordTime time.Duration
		Notify        bool
		Sound         bool
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool
		TwentyFourHour bool
	}

	// AIEndpoint configures one AI provider.
	AIEndpoint struct {
		APIKey  string
		BaseURL string
		Model   string
	}

	// AIConfig holds the AI provider settings.
	AIConfig struct {
		Provider string
		OpenAI   AIEndpoint
		Gemini   AIEndpoint
		Timeout  time.Duration
		CacheTTL time.Duration
	}

	// LogConfig holds log file settings.
	LogConfig struct {
		Level      string
		MaxSize    int
		MaxBackups int
	}

	// CLIConfig holds per-invocation values taken from flags.
	CLIConfig struct {
		Until     time.Time
		Since     time.Time
		Objective string
		Period    string
		Date      string
		Tasks     []string
		Duration  time.Duration
	}

	// SystemConfig holds system-related settings.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.5.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithPaths records the file locations the rest of the program uses.
func WithPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System.ConfigPath = configPath
		c.System.DBPath = dbPath
		c.System.LogPath = logPath

		return nil
	}
}
