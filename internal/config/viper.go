package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"

	"github.com/trssantos/wellness-tracker-sub005/internal/focus"
	"github.com/trssantos/wellness-tracker-sub005/internal/technique"
)

const (
	keyTechnique      = "focus.technique"
	keyMinRecordTime  = "focus.min_record_time"
	keyNotify         = "focus.notify"
	keySound          = "focus.sound"
	keySessionCmd     = "focus.session_cmd"
	keyDarkTheme      = "display.dark_theme"
	keyTwentyFourHour = "display.24hr_clock"
	keyAIProvider     = "ai.provider"
	keyAITimeout      = "ai.timeout"
	keyAICacheTTL     = "ai.cache_ttl"
	keyOpenAIKey      = "ai.openai.api_key"
	keyOpenAIBaseURL  = "ai.openai.base_url"
	keyOpenAIModel    = "ai.openai.model"
	keyGeminiKey      = "ai.gemini.api_key"
	keyGeminiBaseURL  = "ai.gemini.base_url"
	keyGeminiModel    = "ai.gemini.model"
	keyLogLevel       = "log.level"
	keyLogMaxSize     = "log.max_size"
	keyLogMaxBackups  = "log.max_backups"
)

// WithViperConfig returns an Option that loads configuration from the file
// at configPath, writing the defaults there first if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		// API keys in the environment take precedence and are never written
		// to the file.
		_ = v.BindEnv(keyOpenAIKey, "OPENAI_API_KEY")
		_ = v.BindEnv(keyGeminiKey, "GEMINI_API_KEY")

		c.System.ConfigPath = configPath

		return loadViperConfig(v, c)
	}
}

// setupViper sets the defaults. Values chosen in the first-run prompt
// replace the built-in defaults.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyTechnique, string(technique.Pomodoro))
	v.SetDefault(keyMinRecordTime, focus.DefaultMinRecordTime.String())
	v.SetDefault(keyNotify, true)
	v.SetDefault(keySound, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyAIProvider, "openai")
	v.SetDefault(keyAITimeout, "30s")
	v.SetDefault(keyAICacheTTL, "10m")
	v.SetDefault(keyOpenAIKey, "")
	v.SetDefault(keyOpenAIBaseURL, "https://api.openai.com/v1")
	v.SetDefault(keyOpenAIModel, "gpt-4o-mini")
	v.SetDefault(keyGeminiKey, "")
	v.SetDefault(keyGeminiBaseURL, "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault(keyGeminiModel, "gemini-1.5-flash")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 10)
	v.SetDefault(keyLogMaxBackups, 3)

	if c.Focus.Technique != "" {
		v.SetDefault(keyTechnique, c.Focus.Technique)
	}

	if c.AI.Provider != "" {
		v.SetDefault(keyAIProvider, c.AI.Provider)
	}
}

// loadViperConfig copies the resolved values into c.
func loadViperConfig(v *viper.Viper, c *Config) error {
	var err error

	c.Focus.Technique = v.GetString(keyTechnique)
	c.Focus.Notify = v.GetBool(keyNotify)
	c.Focus.Sound = v.GetBool(keySound)
	c.Focus.SessionCmd = v.GetString(keySessionCmd)

	c.Focus.MinRecordTime, err = parseDuration(v.GetString(keyMinRecordTime), "s")
	if err != nil {
		return fmt.Errorf("%s: %w", keyMinRecordTime, err)
	}

	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)

	c.AI.Provider = v.GetString(keyAIProvider)

	c.AI.Timeout, err = parseDuration(v.GetString(keyAITimeout), "s")
	if err != nil {
		return fmt.Errorf("%s: %w", keyAITimeout, err)
	}

	c.AI.CacheTTL, err = parseDuration(v.GetString(keyAICacheTTL), "m")
	if err != nil {
		return fmt.Errorf("%s: %w", keyAICacheTTL, err)
	}

	c.AI.OpenAI = AIEndpoint{
		APIKey:  v.GetString(keyOpenAIKey),
		BaseURL: v.GetString(keyOpenAIBaseURL),
		Model:   v.GetString(keyOpenAIModel),
	}

	c.AI.Gemini = AIEndpoint{
		APIKey:  v.GetString(keyGeminiKey),
		BaseURL: v.GetString(keyGeminiBaseURL),
		Model:   v.GetString(keyGeminiModel),
	}

	c.Log.Level = v.GetString(keyLogLevel)
	c.Log.MaxSize = v.GetInt(keyLogMaxSize)
	c.Log.MaxBackups = v.GetInt(keyLogMaxBackups)

	return nil
}

// parseDuration parses a duration string. A bare number is read in the unit
// given by suffix.
func parseDuration(s, suffix string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	dur, err = time.ParseDuration(s + suffix)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return dur, nil
}
