package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/trssantos/wellness-tracker-sub005/internal/timeutil"
	"github.com/trssantos/wellness-tracker-sub005/store"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Now           time.Time
	Technique     string
	Duration      string
	Until         string
	Objective     string
	SessionCmd    string
	Since         string
	Period        string
	Date          string
	Tasks         []string
	DisableNotify bool
	DisableSound  bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Flags that a command does not define read as their zero value.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Now:           time.Now(),
			Technique:     ctx.String("technique"),
			Duration:      ctx.String("duration"),
			Until:         ctx.String("until"),
			Objective:     ctx.String("objective"),
			SessionCmd:    ctx.String("session-cmd"),
			Since:         ctx.String("since"),
			Period:        ctx.String("period"),
			Date:          ctx.String("date"),
			Tasks:         ctx.StringSlice("task"),
			DisableNotify: ctx.Bool("disable-notification"),
			DisableSound:  ctx.Bool("disable-sound"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Technique != "" {
		c.Focus.Technique = strings.ToLower(strings.TrimSpace(opts.Technique))
	}

	if opts.Duration != "" {
		dur, err := parseDuration(opts.Duration, "m")
		if err != nil {
			return errInvalidCLIDuration.Fmt(opts.Duration, err)
		}

		c.CLI.Duration = dur
	}

	if opts.Until != "" {
		t, err := timeutil.FromStr(opts.Until, opts.Now)
		if err != nil {
			return errInvalidCLITime.Fmt("until", opts.Until).Wrap(err)
		}

		c.CLI.Until = t
	}

	if opts.Since != "" {
		t, err := timeutil.FromStr(opts.Since, opts.Now)
		if err != nil {
			return errInvalidCLITime.Fmt("since", opts.Since).Wrap(err)
		}

		c.CLI.Since = t
	}

	if opts.Date != "" {
		if _, err := time.Parse(store.DateLayout, opts.Date); err != nil {
			return errInvalidDate.Fmt(opts.Date)
		}

		c.CLI.Date = opts.Date
	} else {
		c.CLI.Date = opts.Now.Format(store.DateLayout)
	}

	c.CLI.Objective = strings.TrimSpace(opts.Objective)
	c.CLI.Period = opts.Period
	c.CLI.Tasks = trimTasks(opts.Tasks)

	if opts.SessionCmd != "" {
		c.Focus.SessionCmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Focus.Notify = false
	}

	if opts.DisableSound {
		c.Focus.Sound = false
	}

	return nil
}

// trimTasks trims whitespace and drops empty task texts.
func trimTasks(tasks []string) []string {
	trimmed := make([]string, 0, len(tasks))

	for _, task := range tasks {
		if task = strings.TrimSpace(task); task != "" {
			trimmed = append(trimmed, task)
		}
	}

	return trimmed
}
