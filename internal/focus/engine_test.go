package focus

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trssantos/wellness-tracker-sub005/internal/models"
	"github.com/trssantos/wellness-tracker-sub005/internal/technique"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type committerFunc func(rec *models.FocusSessionRecord) error

func (f committerFunc) Commit(rec *models.FocusSessionRecord) error {
	return f(rec)
}

var start = time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)

func pomodoro(t *testing.T) technique.Technique {
	t.Helper()

	tech, ok := technique.Lookup(technique.Pomodoro)
	require.True(t, ok)

	return tech
}

func flowtime(t *testing.T) technique.Technique {
	t.Helper()

	tech, ok := technique.Lookup(technique.Flowtime)
	require.True(t, ok)

	return tech
}

// run ticks the engine n times, advancing the clock by a second each time.
func run(t *testing.T, e *Engine, c *fakeClock, n int) {
	t.Helper()

	for range n {
		c.Advance(time.Second)
		require.NoError(t, e.Tick())
	}
}

func newEngine(opts ...Option) (*Engine, *fakeClock) {
	c := &fakeClock{now: start}

	return New(append([]Option{WithClock(c)}, opts...)...), c
}

func TestStartUsesTechniqueDefaults(t *testing.T) {
	e, _ := newEngine()

	require.NoError(t, e.Start(StartOptions{Technique: pomodoro(t)}))

	s := e.Status()
	assert.Equal(t, Running, s.State)
	assert.Equal(t, ModeCountdown, s.Mode)
	assert.Equal(t, 1500, s.Total)
	assert.Equal(t, 1500, s.Remaining)
	assert.Equal(t, start, s.StartTime)
}

func TestStartCountUpIgnoresDuration(t *testing.T) {
	e, c := newEngine()

	require.NoError(t, e.Start(StartOptions{
		Technique: flowtime(t),
		Duration:  10 * time.Second,
	}))

	run(t, e, c, 25)

	assert.Equal(t, Running, e.State())
	assert.Equal(t, 25, e.FocusSeconds())
}

func TestStartCustomRequiresDuration(t *testing.T) {
	e, _ := newEngine()

	custom, _ := technique.Lookup(technique.Custom)

	err := e.Start(StartOptions{Technique: custom})
	require.Error(t, err)
	assert.Equal(t, Idle, e.State())
}

func TestStartTwice(t *testing.T) {
	e, _ := newEngine()

	require.NoError(t, e.Start(StartOptions{Technique: pomodoro(t)}))

	err := e.Start(StartOptions{Technique: pomodoro(t)})

	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, Running, te.From)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCountdownCompletes(t *testing.T) {
	var fired []Status

	e, c := newEngine(WithCompletionHook(func(s Status) {
		fired = append(fired, s)
	}))

	require.NoError(t, e.Start(StartOptions{
		Technique: pomodoro(t),
		Duration:  5 * time.Second,
	}))

	run(t, e, c, 4)
	assert.Equal(t, Running, e.State())
	assert.Empty(t, fired)

	run(t, e, c, 1)
	assert.Equal(t, Completed, e.State())
	require.Len(t, fired, 1)
	assert.Equal(t, 5, fired[0].Elapsed)
	assert.Equal(t, start.Add(5*time.Second), fired[0].EndTime)

	err := e.Tick()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUntilClockTime(t *testing.T) {
	e, c := newEngine()

	require.NoError(t, e.Start(StartOptions{
		Technique: pomodoro(t),
		Mode:      ModeUntil,
		Until:     time.Date(0, 1, 1, 10, 0, 30, 0, time.UTC),
	}))

	assert.Equal(t, 30, e.Status().Total)

	run(t, e, c, 29)
	assert.Equal(t, 1, e.Status().Remaining)

	run(t, e, c, 1)
	assert.Equal(t, Completed, e.State())
}

func TestUntilRollsOverMidnight(t *testing.T) {
	e, _ := newEngine()

	require.NoError(t, e.Start(StartOptions{
		Technique: pomodoro(t),
		Mode:      ModeUntil,
		Until:     time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
	}))

	s := e.Status()
	assert.Equal(t, time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC), s.Target)
	assert.Equal(t, 23*60*60, s.Total)
}

func TestUntilStopWhilePausedKeepsFocus(t *testing.T) {
	e, c := newEngine()

	require.NoError(t, e.Start(StartOptions{
		Technique: pomodoro(t),
		Mode:      ModeUntil,
		Until:     time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC),
	}))
	run(t, e, c, 120)

	require.NoError(t, e.Pause())
	c.Advance(100 * time.Second)
	assert.Equal(t, 120, e.FocusSeconds())

	got, err := e.ManualStop()
	require.NoError(t, err)
	assert.Equal(t, Completed, got)
	assert.Equal(t, 120, e.FocusSeconds())
	assert.Equal(t, 100, e.PauseSeconds())
}

func TestUntilStopRightAfterResume(t *testing.T) {
	e, c := newEngine()

	require.NoError(t, e.Start(StartOptions{
		Technique: pomodoro(t),
		Mode:      ModeUntil,
		Until:     time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC),
	}))
	run(t, e, c, 90)

	require.NoError(t, e.Pause())
	c.Advance(40 * time.Second)
	require.NoError(t, e.Resume())

	got, err := e.ManualStop()
	require.NoError(t, err)
	assert.Equal(t, Completed, got)
	assert.Equal(t, 90, e.FocusSeconds())
}

func TestPauseResumeAccounting(t *testing.T) {
	e, c := newEngine()

	require.NoError(t, e.Start(StartOptions{Technique: pomodoro(t)}))
	run(t, e, c, 60)

	require.NoError(t, e.Pause())
	c.Advance(10 * time.Second)
	require.NoError(t, e.Tick())
	require.NoError(t, e.Resume())

	s := e.Status()
	assert.Equal(t, 1, s.Interruptions)
	assert.Equal(t, 10, s.PauseDuration)
	assert.Equal(t, 60, s.Elapsed)

	run(t, e, c, 30)

	require.NoError(t, e.Pause())
	c.Advance(25 * time.Second)
	require.NoError(t, e.Resume())

	s = e.Status()
	assert.Equal(t, 2, s.Interruptions)
	assert.Equal(t, 35, s.PauseDuration)
	assert.Equal(t, 90, s.Elapsed)
}

func TestInvalidTransitions(t *testing.T) {
	e, _ := newEngine()

	assert.ErrorIs(t, e.Pause(), ErrInvalidTransition)
	assert.ErrorIs(t, e.Resume(), ErrInvalidTransition)
	assert.ErrorIs(t, e.Tick(), ErrInvalidTransition)
	assert.ErrorIs(t, e.Discard(), ErrInvalidTransition)

	_, err := e.ManualStop()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = e.Complete(Review{ProductivityRating: 3, FocusRating: 3})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, e.Start(StartOptions{Technique: pomodoro(t)}))
	assert.ErrorIs(t, e.Resume(), ErrInvalidTransition)

	require.NoError(t, e.Pause())
	assert.ErrorIs(t, e.Pause(), ErrInvalidTransition)
}

func TestManualStopThreshold(t *testing.T) {
	cases := []struct {
		name    string
		elapsed int
		want    State
	}{
		{"below threshold", 30, Discarded},
		{"at threshold", 60, Discarded},
		{"above threshold", 61, Completed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, c := newEngine()

			require.NoError(t, e.Start(StartOptions{Technique: pomodoro(t)}))
			run(t, e, c, tc.elapsed)

			got, err := e.ManualStop()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, e.State())
		})
	}
}

func TestManualStopWhilePaused(t *testing.T) {
	e, c := newEngine()

	require.NoError(t, e.Start(StartOptions{Technique: flowtime(t)}))
	run(t, e, c, 120)
	require.NoError(t, e.Pause())
	c.Advance(15 * time.Second)

	got, err := e.ManualStop()
	require.NoError(t, err)
	assert.Equal(t, Completed, got)

	// the open interruption counts through the end of the session
	c.Advance(time.Hour)
	assert.Equal(t, 15, e.PauseSeconds())
}

func TestCompleteBuildsRecord(t *testing.T) {
	var committed *models.FocusSessionRecord

	e, c := newEngine(WithCommitter(committerFunc(func(rec *models.FocusSessionRecord) error {
		committed = rec
		return nil
	})))

	tasks := []models.Task{
		{ID: "a", Text: "Write report", Date: "2024-03-04"},
		{ID: "b", Text: "Reply to email", Date: "2024-03-04"},
	}

	require.NoError(t, e.Start(StartOptions{
		Technique: pomodoro(t),
		Objective: "Finish the draft",
		Tasks:     tasks,
		Duration:  10 * time.Minute,
	}))

	run(t, e, c, 300)
	require.NoError(t, e.Pause())
	c.Advance(60 * time.Second)
	require.NoError(t, e.Resume())
	run(t, e, c, 300)

	require.Equal(t, Completed, e.State())

	rec, err := e.Complete(Review{
		ProductivityRating: 4,
		FocusRating:        5,
		Notes:              "good",
		CompletedTaskIDs:   []string{"b"},
	})
	require.NoError(t, err)

	assert.Same(t, committed, rec)
	assert.Equal(t, Saved, e.State())
	assert.Equal(t, fmt.Sprintf("focus-%d", c.Now().UnixMilli()), rec.ID)
	assert.Equal(t, 600, rec.Duration)
	assert.Equal(t, 60, rec.TotalPauseDuration)
	require.NotNil(t, rec.InterruptionsCount)
	assert.Equal(t, 1, *rec.InterruptionsCount)
	assert.Equal(t, Score(660, 1, 60), rec.FocusScore)
	assert.Equal(t, []models.Task{tasks[1]}, rec.Tasks)
	assert.Equal(t, tasks, rec.AllTasks)
	assert.Equal(t, "Finish the draft", rec.Objective)
	assert.Equal(t, start, rec.StartTime)
	assert.Equal(t, start.Add(660*time.Second), rec.EndTime)
}

func TestCompleteRejectsInvalidRatings(t *testing.T) {
	e, c := newEngine()

	require.NoError(t, e.Start(StartOptions{Technique: flowtime(t)}))
	run(t, e, c, 90)

	_, err := e.ManualStop()
	require.NoError(t, err)

	_, err = e.Complete(Review{ProductivityRating: 0, FocusRating: 3})
	require.Error(t, err)
	assert.Equal(t, Completed, e.State())

	_, err = e.Complete(Review{ProductivityRating: 3, FocusRating: 6})
	require.Error(t, err)
	assert.Equal(t, Completed, e.State())
}

func TestCompleteCommitFailureKeepsReview(t *testing.T) {
	boom := errors.New("disk full")

	e, c := newEngine(WithCommitter(committerFunc(func(*models.FocusSessionRecord) error {
		return boom
	})))

	require.NoError(t, e.Start(StartOptions{Technique: flowtime(t)}))
	run(t, e, c, 90)

	_, err := e.ManualStop()
	require.NoError(t, err)

	_, err = e.Complete(Review{ProductivityRating: 3, FocusRating: 3})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, Completed, e.State())
	assert.Nil(t, e.Record())
}

func TestDiscardNeverCommits(t *testing.T) {
	e, c := newEngine(WithCommitter(committerFunc(func(*models.FocusSessionRecord) error {
		t.Fatal("discarded sessions must not be committed")
		return nil
	})))

	require.NoError(t, e.Start(StartOptions{Technique: pomodoro(t)}))
	run(t, e, c, 120)

	_, err := e.ManualStop()
	require.NoError(t, err)
	require.NoError(t, e.Discard())

	assert.Equal(t, Discarded, e.State())
	assert.Nil(t, e.Record())
	assert.ErrorIs(t, e.Discard(), ErrInvalidTransition)
}
