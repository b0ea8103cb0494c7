package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/trssantos/wellness-tracker-sub005/history"
	"github.com/trssantos/wellness-tracker-sub005/internal/models"
	"github.com/trssantos/wellness-tracker-sub005/internal/technique"
	"github.com/trssantos/wellness-tracker-sub005/internal/timeutil"
	"github.com/trssantos/wellness-tracker-sub005/internal/ui"
	"github.com/trssantos/wellness-tracker-sub005/stats"
)

const (
	noSessionsMsg = "No sessions found for the specified time range"
	dateFormat    = "Jan 02, 2006 03:04 PM"
)

// since resolves the start of the reporting range from --since or --period.
func since(e *env) (time.Time, stats.Window, error) {
	period := e.cfg.CLI.Period
	if period == "" {
		period = string(stats.WindowWeek)
	}

	w, err := stats.ParseWindow(period)
	if err != nil {
		return time.Time{}, "", err
	}

	if !e.cfg.CLI.Since.IsZero() {
		return e.cfg.CLI.Since, w, nil
	}

	return w.Since(e.now()), w, nil
}

func filterSince(
	sessions []models.FocusSessionRecord,
	start time.Time,
) []models.FocusSessionRecord {
	if start.IsZero() {
		return sessions
	}

	filtered := make([]models.FocusSessionRecord, 0, len(sessions))

	for i := range sessions {
		if !sessions[i].StartTime.Before(start) {
			filtered = append(filtered, sessions[i])
		}
	}

	return filtered
}

func interruptionsCell(rec *models.FocusSessionRecord) string {
	if !rec.HasInterruptionData() {
		return "-"
	}

	return strconv.Itoa(rec.Interruptions())
}

// printSessionsTable prints a session table to w.
func printSessionsTable(w io.Writer, sessions []models.FocusSessionRecord) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := &sessions[i]

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			sess.ID,
			sess.StartTime.Local().Format(dateFormat),
			technique.DisplayName(sess.Technique),
			timeutil.Human(sess.Duration),
			interruptionsCell(sess),
			ui.Green(sess.FocusScore),
			sess.Objective,
		}
	}

	tableBody = append([][]string{
		{"#", "ID", "START DATE", "TECHNIQUE", "FOCUS", "INTERRUPTIONS", "SCORE", "OBJECTIVE"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// listAction prints the sessions started within the reporting range.
func listAction(ctx *cli.Context, e *env) error {
	start, _, err := since(e)
	if err != nil {
		return err
	}

	sessions, err := history.New(e.db).All()
	if err != nil {
		return err
	}

	sessions = filterSince(sessions, start)

	w := ctx.App.Writer

	if ctx.Bool("json") {
		return writeJSON(w, sessions)
	}

	if len(sessions) == 0 {
		pterm.Fprintln(w, pterm.Info.Sprint(noSessionsMsg))
		return nil
	}

	printSessionsTable(w, sessions)

	return nil
}
