package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)
	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)
	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)
	commands := fmt.Sprintf(
		"%s\n{{range .VisibleCommands}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)
	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t%s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("GLOBAL OPTIONS"),
		pterm.Green("--{{.Name}}"),
	)
	environment := fmt.Sprintf(
		"%s\n\t\t%s\tselect an alternate set of config, database and log files\n"+
			"\t\t%s\tdisable coloured output\n"+
			"\t\t%s, %s\tAPI keys for the AI providers\n",
		pterm.Yellow("ENVIRONMENT"),
		pterm.Green("WELLNESS_ENV"),
		pterm.Green(envWellnessNoColor),
		pterm.Green("OPENAI_API_KEY"),
		pterm.Green("GEMINI_API_KEY"),
	)

	return description + usage + version + commands + options + environment
}
