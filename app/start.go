package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/trssantos/wellness-tracker-sub005/checklist"
	"github.com/trssantos/wellness-tracker-sub005/history"
	"github.com/trssantos/wellness-tracker-sub005/internal/focus"
	"github.com/trssantos/wellness-tracker-sub005/internal/models"
	"github.com/trssantos/wellness-tracker-sub005/internal/technique"
	"github.com/trssantos/wellness-tracker-sub005/timer"
)

// sessionTasks collects the tasks offered to a session: the unchecked
// checklist items of the date followed by ad-hoc tasks from the flags.
func sessionTasks(e *env, withChecklist bool) ([]models.Task, error) {
	date := e.cfg.CLI.Date

	var tasks []models.Task

	if withChecklist {
		var err error

		tasks, err = checklist.New(e.db).Tasks(date)
		if err != nil {
			return nil, err
		}
	}

	for _, text := range e.cfg.CLI.Tasks {
		tasks = append(tasks, checklist.NewTask(date, text))
	}

	return tasks, nil
}

// startOptions resolves the session to start from the configuration.
func startOptions(e *env, tasks []models.Task) (focus.StartOptions, error) {
	tech, ok := technique.Lookup(e.cfg.Focus.Technique)
	if !ok {
		return focus.StartOptions{}, errUnknownTechnique.Fmt(e.cfg.Focus.Technique)
	}

	opts := focus.StartOptions{
		Technique: tech,
		Objective: e.cfg.CLI.Objective,
		Tasks:     tasks,
		Duration:  e.cfg.CLI.Duration,
	}

	if !e.cfg.CLI.Until.IsZero() {
		opts.Mode = focus.ModeUntil
		opts.Until = e.cfg.CLI.Until
	}

	return opts, nil
}

// newEngine returns an engine that saves reviewed sessions to the history and
// queues completion alerts for the timer.
func newEngine(e *env, alerter *timer.Alerter) *focus.Engine {
	return focus.New(
		focus.WithMinRecordTime(e.cfg.Focus.MinRecordTime),
		focus.WithCommitter(history.New(e.db)),
		focus.WithCompletionHook(alerter.Queue),
	)
}

// startAction runs a focus session in the terminal.
func startAction(ctx *cli.Context, e *env) error {
	tasks, err := sessionTasks(e, !ctx.Bool("no-checklist"))
	if err != nil {
		return err
	}

	opts, err := startOptions(e, tasks)
	if err != nil {
		return err
	}

	alerter := timer.NewAlerter(e.cfg.Focus.Notify, e.cfg.Focus.Sound)

	engine := newEngine(e, alerter)

	if err := engine.Start(opts); err != nil {
		return err
	}

	t := timer.New(engine, timer.Options{
		Alerter:        alerter,
		SessionCmd:     e.cfg.Focus.SessionCmd,
		DarkTheme:      e.cfg.Display.DarkTheme,
		TwentyFourHour: e.cfg.Display.TwentyFourHour,
	})

	if _, err := tea.NewProgram(t).Run(); err != nil {
		return err
	}

	if t.Record() != nil {
		pterm.Success.Println(t.Message())
	} else if msg := t.Message(); msg != "" {
		pterm.Info.Println(msg)
	}

	return nil
}
