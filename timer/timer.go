// Package timer is the terminal interface of a running focus session
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/trssantos/wellness-tracker-sub005/internal/focus"
	"github.com/trssantos/wellness-tracker-sub005/internal/models"
)

// Options configures the presentation and post-session behaviour of the
// timer.
type Options struct {
	Alerter        *Alerter
	SessionCmd     string
	DarkTheme      bool
	TwentyFourHour bool
}

type (
	tickMsg time.Time

	sessionCmdMsg struct {
		err error
	}

	alertDoneMsg struct{}
)

// Timer is the bubbletea model wrapping a focus engine. The engine must have
// been started before the program runs.
type Timer struct {
	engine   *focus.Engine
	form     *huh.Form
	review   *review
	err      error
	runCmd   func(string) error
	message  string
	opts     Options
	keys     keymap
	help     help.Model
	progress progress.Model
	style    style
	alerting bool
	quitting bool
}

// New returns a timer for a started engine.
func New(engine *focus.Engine, opts Options) *Timer {
	return &Timer{
		engine:   engine,
		opts:     opts,
		runCmd:   RunSessionCmd,
		keys:     defaultKeymap,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		style:    newStyle(opts.DarkTheme),
	}
}

// Message is the summary shown once the program has exited.
func (t *Timer) Message() string {
	return t.message
}

// Record returns the saved session, or nil if nothing was saved.
func (t *Timer) Record() *models.FocusSessionRecord {
	return t.engine.Record()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(at time.Time) tea.Msg {
		return tickMsg(at)
	})
}

func (t *Timer) Init() tea.Cmd {
	return tick()
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	slog.Debug(spew.Sdump(msg))

	if _, ok := msg.(alertDoneMsg); ok {
		t.alerting = false

		if t.quitting {
			return t, tea.Quit
		}

		return t, nil
	}

	if t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick()

	case tea.WindowSizeMsg:
		t.progress.Width = max(minWidth, min(msg.Width-padding*2-4, maxWidth))
		return t, nil

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case sessionCmdMsg:
		if msg.err != nil {
			slog.Error("session command failed", "error", msg.err)
		}

		return t, t.quit()
	}

	return t, nil
}

func (t *Timer) handleTick() (tea.Model, tea.Cmd) {
	state := t.engine.State()
	if state != focus.Running && state != focus.Paused {
		return t, nil
	}

	if err := t.engine.Tick(); err != nil {
		t.err = err
		return t, nil
	}

	if t.engine.State() == focus.Completed {
		return t, tea.Batch(t.openReview(), t.alert())
	}

	return t, tick()
}

// alert announces a queued completion. The program does not quit until the
// announcement has finished.
func (t *Timer) alert() tea.Cmd {
	if t.opts.Alerter == nil {
		return nil
	}

	st, ok := t.opts.Alerter.take()
	if !ok {
		return nil
	}

	t.alerting = true
	a := t.opts.Alerter

	return func() tea.Msg {
		a.Alert(st)
		return alertDoneMsg{}
	}
}

func (t *Timer) quit() tea.Cmd {
	if t.alerting {
		t.quitting = true
		return nil
	}

	return tea.Quit
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, t.keys.togglePlay):
		var err error

		switch t.engine.State() {
		case focus.Running:
			err = t.engine.Pause()
		case focus.Paused:
			err = t.engine.Resume()
		}

		t.err = err

		return t, nil

	case key.Matches(msg, t.keys.stop):
		state, err := t.engine.ManualStop()
		if err != nil {
			t.err = err
			return t, nil
		}

		if state == focus.Discarded {
			t.message = "Session was too short to record."
			return t, t.quit()
		}

		return t, t.openReview()

	case key.Matches(msg, t.keys.quit):
		_ = t.engine.Discard()

		t.message = "Session discarded."

		return t, t.quit()
	}

	return t, nil
}

func (t *Timer) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return t, t.abandonReview()
	}

	model, cmd := t.form.Update(msg)

	f, ok := model.(*huh.Form)
	if !ok {
		return t, cmd
	}

	t.form = f

	switch t.form.State {
	case huh.StateCompleted:
		return t, t.save()
	case huh.StateAborted:
		return t, t.abandonReview()
	case huh.StateNormal:
	}

	return t, cmd
}

func (t *Timer) abandonReview() tea.Cmd {
	_ = t.engine.Discard()

	t.form = nil
	t.message = "Session discarded."

	return t.quit()
}

// save completes the engine with the reviewed values. A failed save reopens
// the review with the error so the user can retry or abandon.
func (t *Timer) save() tea.Cmd {
	rec, err := t.engine.Complete(t.review.result())
	if err != nil {
		t.err = err
		return t.reopenReview()
	}

	t.err = nil
	t.form = nil
	t.message = "Session saved: " + rec.ID

	if t.opts.SessionCmd == "" {
		return t.quit()
	}

	sessionCmd := t.opts.SessionCmd
	run := t.runCmd

	return func() tea.Msg {
		return sessionCmdMsg{err: run(sessionCmd)}
	}
}
