// Package app wires the tracker's command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/trssantos/wellness-tracker-sub005/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the wellness app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "wellness",
		Usage: `
		Track focus sessions from the command-line, review them, and see
		when you do your best work.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "Start a focus session",
				Flags: []cli.Flag{
					techniqueFlag,
					durationFlag,
					untilFlag,
					objectiveFlag,
					taskFlag,
					dateFlag,
					noChecklistFlag,
					sessionCmdFlag,
					disableNotificationFlag,
					disableSoundFlag,
				},
				Action: withEnv(startAction),
			},
			{
				Name:   "stats",
				Usage:  "Summarise focus sessions over a period. Defaults to the last 7 days",
				Flags:  []cli.Flag{periodFlag, sinceFlag, jsonFlag},
				Action: withEnv(statsAction),
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List saved focus sessions",
				Flags:   []cli.Flag{periodFlag, sinceFlag, jsonFlag},
				Action:  withEnv(listAction),
			},
			{
				Name:      "delete",
				Usage:     "Delete a saved focus session",
				ArgsUsage: "<session-id>",
				Flags:     []cli.Flag{yesFlag},
				Action:    withEnv(deleteAction),
			},
			{
				Name:   "techniques",
				Usage:  "List the available focus techniques",
				Flags:  []cli.Flag{jsonFlag},
				Action: techniquesAction,
			},
			{
				Name:  "tasks",
				Usage: "Work with the daily checklist",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "Print the checklist for a date",
						Flags:  []cli.Flag{dateFlag, jsonFlag},
						Action: withEnv(tasksListAction),
					},
					{
						Name:      "check",
						Usage:     "Mark a checklist item as done",
						ArgsUsage: "<task text>",
						Flags:     []cli.Flag{dateFlag, undoFlag},
						Action:    withEnv(tasksCheckAction),
					},
					{
						Name:  "generate",
						Usage: "Generate task categories for a date with the configured AI provider",
						Flags: []cli.Flag{
							dateFlag,
							objectiveFlag,
							moodFlag,
							energyFlag,
							contextFlag,
						},
						Action: withEnv(tasksGenerateAction),
					},
				},
			},
			{
				Name:  "ai",
				Usage: "Talk to the configured AI provider",
				Subcommands: []*cli.Command{
					{
						Name:      "prompt",
						Usage:     "Send a prompt and print the response",
						ArgsUsage: "<prompt>",
						Action:    withEnv(aiPromptAction),
					},
					{
						Name:      "use",
						Usage:     "Store the provider to use for AI requests",
						ArgsUsage: "<openai|gemini>",
						Action:    withEnv(aiUseAction),
					},
				},
			},
			{
				Name:      "export",
				Usage:     "Write the whole tracker document to a file",
				ArgsUsage: "<file>",
				Flags:     []cli.Flag{compressFlag},
				Action:    withEnv(exportAction),
			},
			{
				Name:      "import",
				Usage:     "Replace the tracker document with an exported file",
				ArgsUsage: "<file>",
				Flags:     []cli.Flag{yesFlag},
				Action:    withEnv(importAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}
}
