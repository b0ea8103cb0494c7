package app

import (
	"github.com/urfave/cli/v2"

	"github.com/trssantos/wellness-tracker-sub005/history"
	"github.com/trssantos/wellness-tracker-sub005/stats"
)

// statsAction computes the stats for the reporting range.
func statsAction(ctx *cli.Context, e *env) error {
	start, w, err := since(e)
	if err != nil {
		return err
	}

	sessions, err := history.New(e.db).All()
	if err != nil {
		return err
	}

	now := e.now()

	agg := stats.ComputeSince(sessions, start, now, w)

	if ctx.Bool("json") {
		return stats.RenderJSON(ctx.App.Writer, &agg)
	}

	stats.Render(ctx.App.Writer, &agg, now)

	return nil
}
