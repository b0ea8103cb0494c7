package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/trssantos/wellness-tracker-sub005/history"
	"github.com/trssantos/wellness-tracker-sub005/internal/models"
)

// deleteAction deletes a saved session. It requests for confirmation before
// proceeding unless --yes is set.
func deleteAction(ctx *cli.Context, e *env) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingArg.Fmt("session id")
	}

	h := history.New(e.db)

	rec, err := h.Get(id)
	if err != nil {
		return err
	}

	w := ctx.App.Writer

	if !ctx.Bool("yes") {
		printSessionsTable(w, []models.FocusSessionRecord{*rec})
		confirm(w, "The above session will be deleted permanently")
	}

	if _, err := h.DeleteByID(id); err != nil {
		return err
	}

	pterm.Fprintln(w, pterm.Success.Sprint("Deleted session ", id))

	return nil
}
