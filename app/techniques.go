package app

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/trssantos/wellness-tracker-sub005/internal/technique"
	"github.com/trssantos/wellness-tracker-sub005/internal/timeutil"
	"github.com/trssantos/wellness-tracker-sub005/internal/ui"
)

func durationCell(d time.Duration) string {
	if d == 0 {
		return "-"
	}

	return timeutil.Human(int(d.Seconds()))
}

// techniquesAction prints the technique catalog.
func techniquesAction(ctx *cli.Context) error {
	all := technique.All()

	if ctx.Bool("json") {
		return writeJSON(ctx.App.Writer, all)
	}

	tableBody := [][]string{{"ID", "NAME", "MODE", "FOCUS", "BREAK", "DESCRIPTION"}}

	for _, t := range all {
		tableBody = append(tableBody, []string{
			ui.Cyan(t.ID),
			t.Name,
			string(t.Mode),
			durationCell(t.FocusDuration),
			durationCell(t.BreakDuration),
			t.Description,
		})
	}

	ui.PrintTable(tableBody, ctx.App.Writer)

	return nil
}
