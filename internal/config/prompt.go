package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/trssantos/wellness-tracker-sub005/internal/technique"
)

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Technique  string
	AIProvider string
}

// WithPromptConfig returns an Option that asks for the main settings when no
// config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

func techniqueOptions() []huh.Option[string] {
	var opts []huh.Option[string]

	for _, t := range technique.All() {
		o := huh.NewOption(t.Name, t.ID)
		if t.ID == technique.Pomodoro {
			o = o.Selected(true)
		}

		opts = append(opts, o)
	}

	return opts
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromString("Wellness"),
	).Render()

	_ = putils.BulletListFromString(`Follow the prompts below to configure the tracker for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'wellness edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default focus technique").
				Options(techniqueOptions()...).
				Value(&opts.Technique),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("AI provider for task suggestions").
				Options(
					huh.NewOption("OpenAI compatible", "openai").Selected(true),
					huh.NewOption("Gemini", "gemini"),
				).
				Value(&opts.AIProvider),
		),
	).WithInput(Stdin).WithOutput(Stdout)

	if err := form.Run(); err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Focus.Technique = opts.Technique
	c.AI.Provider = opts.AIProvider
}
