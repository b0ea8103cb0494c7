package app

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/trssantos/wellness-tracker-sub005/ai"
	"github.com/trssantos/wellness-tracker-sub005/checklist"
	"github.com/trssantos/wellness-tracker-sub005/internal/models"
	"github.com/trssantos/wellness-tracker-sub005/internal/ui"
)

func printChecklist(w io.Writer, items []checklist.Item) {
	tableBody := [][]string{{"#", "DONE", "TASK", "CATEGORY"}}

	for i, item := range items {
		done := ""
		if item.Checked {
			done = ui.Green("✓")
		}

		tableBody = append(tableBody, []string{
			strconv.Itoa(i + 1),
			done,
			item.Text,
			item.Category,
		})
	}

	ui.PrintTable(tableBody, w)
}

// tasksListAction prints the checklist of a date.
func tasksListAction(ctx *cli.Context, e *env) error {
	date := e.cfg.CLI.Date

	items, err := checklist.New(e.db).Items(date)
	if err != nil {
		return err
	}

	w := ctx.App.Writer

	if ctx.Bool("json") {
		return writeJSON(w, items)
	}

	if len(items) == 0 {
		pterm.Fprintln(w, pterm.Info.Sprint("No tasks for ", date))
		return nil
	}

	printChecklist(w, items)

	return nil
}

// tasksCheckAction checks or unchecks a checklist item by its text.
func tasksCheckAction(ctx *cli.Context, e *env) error {
	text := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if text == "" {
		return errMissingArg.Fmt("task text")
	}

	done := !ctx.Bool("undo")

	if err := checklist.New(e.db).Check(e.cfg.CLI.Date, text, done); err != nil {
		return err
	}

	verb := "Checked"
	if !done {
		verb = "Unchecked"
	}

	pterm.Fprintln(ctx.App.Writer, pterm.Success.Sprintf("%s %q", verb, text))

	return nil
}

func printCategories(w io.Writer, cats []models.TaskCategory) {
	for _, cat := range cats {
		pterm.Fprintln(w, ui.Cyan(cat.Title))

		for _, item := range cat.Items {
			pterm.Fprintln(w, "  • "+item)
		}
	}
}

// tasksGenerateAction asks the AI provider for task categories and stores
// them as the date's AI tasks.
func tasksGenerateAction(ctx *cli.Context, e *env) error {
	energy := ctx.Int("energy")
	if energy < 1 || energy > ai.MaxEnergyLevel {
		return errInvalidEnergy.Fmt(ai.MaxEnergyLevel, energy)
	}

	svc, err := e.aiService()
	if err != nil {
		return err
	}

	plan, err := svc.GenerateTasks(ctx.Context, ai.TaskContext{
		Mood:        strings.TrimSpace(ctx.String("mood")),
		EnergyLevel: energy,
		Objective:   e.cfg.CLI.Objective,
		Context:     strings.TrimSpace(ctx.String("context")),
	})
	if err != nil {
		slog.Error(
			"task generation failed",
			"provider", svc.Active(),
			"error", err,
		)

		return errGenerateTasks
	}

	date := e.cfg.CLI.Date

	err = checklist.New(e.db).SetCategories(date, checklist.KeyAITasks, plan.Categories)
	if err != nil {
		return err
	}

	w := ctx.App.Writer

	printCategories(w, plan.Categories)
	pterm.Fprintln(w, pterm.Success.Sprint("Saved generated tasks for ", date))

	return nil
}
