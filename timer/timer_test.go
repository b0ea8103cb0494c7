package timer

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trssantos/wellness-tracker-sub005/internal/focus"
	"github.com/trssantos/wellness-tracker-sub005/internal/models"
	"github.com/trssantos/wellness-tracker-sub005/internal/technique"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type committerFunc func(rec *models.FocusSessionRecord) error

func (f committerFunc) Commit(rec *models.FocusSessionRecord) error {
	return f(rec)
}

var tasks = []models.Task{
	{ID: "t1", Text: "Write report", Date: "2024-03-04"},
	{ID: "t2", Text: "Reply to email", Date: "2024-03-04"},
}

func newTimer(
	t *testing.T,
	d time.Duration,
	commit committerFunc,
) (*Timer, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)}

	engine := focus.New(
		focus.WithClock(clock),
		focus.WithCommitter(commit),
	)

	tech, ok := technique.Lookup(technique.Pomodoro)
	require.True(t, ok)

	require.NoError(t, engine.Start(focus.StartOptions{
		Technique: tech,
		Duration:  d,
		Objective: "Ship the release",
		Tasks:     tasks,
	}))

	return New(engine, Options{DarkTheme: true}), clock
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func advance(tm *Timer, clock *fakeClock, n int) {
	for range n {
		clock.now = clock.now.Add(time.Second)
		tm.Update(tickMsg(clock.now))
	}
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()

	if cmd == nil {
		return false
	}

	_, ok := cmd().(tea.QuitMsg)

	return ok
}

func noCommit(*models.FocusSessionRecord) error {
	return nil
}

func TestCountdownOpensReview(t *testing.T) {
	tm, clock := newTimer(t, 3*time.Second, noCommit)

	advance(tm, clock, 2)
	assert.Equal(t, focus.Running, tm.engine.State())
	assert.Nil(t, tm.form)

	advance(tm, clock, 1)
	assert.Equal(t, focus.Completed, tm.engine.State())
	require.NotNil(t, tm.form)
	assert.Equal(t, defaultRating, tm.review.productivity)
	assert.Equal(t, defaultRating, tm.review.focus)
}

func TestTogglePause(t *testing.T) {
	tm, clock := newTimer(t, time.Minute, noCommit)

	tm.Update(keyPress("p"))
	assert.Equal(t, focus.Paused, tm.engine.State())

	advance(tm, clock, 5)
	assert.Equal(t, 60, tm.engine.Status().Remaining)

	tm.Update(keyPress(" "))
	assert.Equal(t, focus.Running, tm.engine.State())
	assert.Equal(t, 1, tm.engine.Status().Interruptions)
	assert.Equal(t, 5, tm.engine.Status().PauseDuration)
}

func TestStopTooShortDiscards(t *testing.T) {
	tm, clock := newTimer(t, 10*time.Minute, noCommit)

	advance(tm, clock, 30)

	_, cmd := tm.Update(keyPress("s"))
	assert.Equal(t, focus.Discarded, tm.engine.State())
	assert.Equal(t, "Session was too short to record.", tm.Message())
	assert.True(t, isQuit(t, cmd))
}

func TestStopOpensReview(t *testing.T) {
	tm, clock := newTimer(t, 10*time.Minute, noCommit)

	advance(tm, clock, 61)

	tm.Update(keyPress("s"))
	assert.Equal(t, focus.Completed, tm.engine.State())
	assert.NotNil(t, tm.form)
}

func TestQuitDiscardsWithoutSaving(t *testing.T) {
	commits := 0

	tm, clock := newTimer(t, 10*time.Minute, func(*models.FocusSessionRecord) error {
		commits++
		return nil
	})

	advance(tm, clock, 120)

	_, cmd := tm.Update(keyPress("q"))
	assert.Equal(t, focus.Discarded, tm.engine.State())
	assert.True(t, isQuit(t, cmd))
	assert.Zero(t, commits)
	assert.Nil(t, tm.Record())
}

func TestCtrlCDuringReviewDiscards(t *testing.T) {
	tm, clock := newTimer(t, 2*time.Second, noCommit)

	advance(tm, clock, 2)
	require.NotNil(t, tm.form)

	_, cmd := tm.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, focus.Discarded, tm.engine.State())
	assert.Nil(t, tm.form)
	assert.True(t, isQuit(t, cmd))
}

func TestSaveRunsSessionCmd(t *testing.T) {
	var saved *models.FocusSessionRecord

	tm, clock := newTimer(t, 2*time.Second, func(rec *models.FocusSessionRecord) error {
		saved = rec
		return nil
	})

	var ran string

	tm.opts.SessionCmd = "notify-send done"
	tm.runCmd = func(s string) error {
		ran = s
		return nil
	}

	advance(tm, clock, 2)
	require.NotNil(t, tm.form)

	tm.review.productivity = 4
	tm.review.focus = 5
	tm.review.taskIDs = []string{"t2"}
	tm.review.notes = "good run"

	cmd := tm.save()
	require.NotNil(t, cmd)
	require.NotNil(t, saved)

	assert.Equal(t, focus.Saved, tm.engine.State())
	assert.Equal(t, 4, saved.ProductivityRating)
	assert.Equal(t, 5, saved.FocusRating)
	assert.Equal(t, []models.Task{tasks[1]}, saved.Tasks)
	assert.Equal(t, "good run", saved.Notes)
	assert.Equal(t, "Session saved: "+saved.ID, tm.Message())

	msg := cmd()
	assert.Equal(t, sessionCmdMsg{}, msg)
	assert.Equal(t, "notify-send done", ran)

	_, next := tm.Update(msg)
	assert.True(t, isQuit(t, next))
}

func TestSaveFailureReopensReview(t *testing.T) {
	tm, clock := newTimer(t, 2*time.Second, func(*models.FocusSessionRecord) error {
		return assert.AnError
	})

	advance(tm, clock, 2)

	tm.review.productivity = 2

	cmd := tm.save()
	assert.False(t, isQuit(t, cmd))
	require.Error(t, tm.err)
	require.NotNil(t, tm.form)
	assert.Equal(t, focus.Completed, tm.engine.State())
	assert.Equal(t, 2, tm.review.productivity)
	assert.Empty(t, tm.Message())
}

func TestViewShowsSession(t *testing.T) {
	tm, clock := newTimer(t, 90*time.Second, noCommit)

	advance(tm, clock, 5)

	view := tm.View()
	assert.Contains(t, view, "Pomodoro")
	assert.Contains(t, view, "Ship the release")
	assert.Contains(t, view, "01:25")
	assert.Contains(t, view, "0 interruptions")
}

func TestAlert(t *testing.T) {
	var titles []string

	chimes := 0

	a := &Alerter{
		Notify: true,
		Sound:  true,
		notify: func(title, _ string) error {
			titles = append(titles, title)
			return nil
		},
		chime: func() error {
			chimes++
			return errors.New("no audio device")
		},
	}

	a.Alert(focus.Status{Technique: technique.Pomodoro, Elapsed: 1500})
	assert.Equal(t, []string{"Pomodoro Technique session complete"}, titles)
	assert.Equal(t, 1, chimes)

	a.Notify, a.Sound = false, false
	a.Alert(focus.Status{Technique: technique.Pomodoro})
	assert.Len(t, titles, 1)
	assert.Equal(t, 1, chimes)
}

func TestRunSessionCmd(t *testing.T) {
	require.NoError(t, RunSessionCmd(""))
	require.NoError(t, RunSessionCmd("true"))

	err := RunSessionCmd(`echo "unterminated`)
	require.ErrorIs(t, err, errSessionCmd)
}

func TestCompletionAlertHoldsQuit(t *testing.T) {
	var alerted []focus.Status

	notified := 0

	a := &Alerter{
		Notify: true,
		notify: func(string, string) error {
			notified++
			return nil
		},
		chime:  func() error { return nil },
	}

	clock := &fakeClock{now: time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)}

	engine := focus.New(
		focus.WithClock(clock),
		focus.WithCommitter(committerFunc(noCommit)),
		focus.WithCompletionHook(func(st focus.Status) {
			alerted = append(alerted, st)
			a.Queue(st)
		}),
	)

	tech, ok := technique.Lookup(technique.Pomodoro)
	require.True(t, ok)
	require.NoError(t, engine.Start(focus.StartOptions{Technique: tech, Duration: 2 * time.Second}))

	tm := New(engine, Options{Alerter: a})

	advance(tm, clock, 2)
	require.Len(t, alerted, 1)
	require.NotNil(t, tm.form)
	assert.True(t, tm.alerting)

	_, ok = a.take()
	assert.False(t, ok, "queued alert is handed to the timer once")

	cmd := tm.abandonReview()
	assert.Nil(t, cmd)
	assert.Equal(t, focus.Discarded, tm.engine.State())

	_, next := tm.Update(alertDoneMsg{})
	assert.False(t, tm.alerting)
	assert.True(t, isQuit(t, next))

	a.Queue(alerted[0])

	run := New(engine, Options{Alerter: a}).alert()
	require.NotNil(t, run)
	assert.Equal(t, alertDoneMsg{}, run())
	assert.Equal(t, 1, notified)
}

func TestQuitWithoutPendingAlert(t *testing.T) {
	a := NewAlerter(false, false)

	tm, clock := newTimer(t, 10*time.Minute, noCommit)
	tm.opts.Alerter = a

	advance(tm, clock, 30)
	assert.False(t, tm.alerting)

	_, cmd := tm.Update(keyPress("q"))
	assert.True(t, isQuit(t, cmd))

	_, next := tm.Update(alertDoneMsg{})
	assert.Nil(t, next)
}
