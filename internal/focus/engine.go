// Package focus operates a single focus session: its running/paused state,
// interruption bookkeeping, and the record produced when it is saved
package focus

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/trssantos/wellness-tracker-sub005/internal/models"
	"github.com/trssantos/wellness-tracker-sub005/internal/technique"
)

// Mode is the timer mode of a running session.
type Mode string

const (
	ModeCountdown Mode = "countdown"
	ModeCountUp   Mode = "count-up"
	// ModeUntil counts down to a wall-clock time of day.
	ModeUntil Mode = "until"
)

// State is the lifecycle state of a session.
type State int

const (
	Idle State = iota
	Running
	Paused
	// Completed sessions are waiting for review before being saved.
	Completed
	Discarded
	Saved
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Discarded:
		return "discarded"
	case Saved:
		return "saved"
	default:
		return "unknown"
	}
}

// DefaultMinRecordTime is the focus time a manually stopped session must
// exceed to be offered for review.
const DefaultMinRecordTime = 60 * time.Second

// StartOptions describes the session to start.
type StartOptions struct {
	// Until is the target time of day for ModeUntil. Only the clock portion
	// is used.
	Until     time.Time
	Technique technique.Technique
	// Mode defaults to the timer mode of the technique.
	Mode      Mode
	Objective string
	Tasks     []models.Task
	// Duration overrides the focus duration of the technique in countdown
	// mode.
	Duration time.Duration
}

// Review is the user's wrap-up of a completed session.
type Review struct {
	Notes              string
	CompletedTaskIDs   []string
	ProductivityRating int
	FocusRating        int
}

// Committer persists a reviewed session.
type Committer interface {
	Commit(rec *models.FocusSessionRecord) error
}

// Status is a snapshot of the session.
type Status struct {
	StartTime     time.Time
	EndTime       time.Time
	Target        time.Time
	Technique     string
	Mode          Mode
	Objective     string
	Tasks         []models.Task
	State         State
	Total         int
	Remaining     int
	Elapsed       int
	Interruptions int
	PauseDuration int
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithMinRecordTime sets the focus time a manually stopped session must
// exceed to be kept.
func WithMinRecordTime(d time.Duration) Option {
	return func(e *Engine) {
		e.minRecord = int(d.Seconds())
	}
}

// WithCommitter sets where reviewed sessions are saved.
func WithCommitter(c Committer) Option {
	return func(e *Engine) {
		e.committer = c
	}
}

// WithCompletionHook registers a function called when a countdown reaches
// zero.
func WithCompletionHook(fn func(Status)) Option {
	return func(e *Engine) {
		e.onComplete = fn
	}
}

// Engine is the state machine of a single focus session. It is not safe for
// concurrent use.
type Engine struct {
	startTime     time.Time
	endTime       time.Time
	target        time.Time
	clock         Clock
	committer     Committer
	onComplete    func(Status)
	record        *models.FocusSessionRecord
	mode          Mode
	objective     string
	technique     technique.Technique
	interruptions []models.Interruption
	tasks         []models.Task
	state         State
	total         int
	remaining     int
	elapsed       int
	minRecord     int
}

// New creates an idle engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		clock:     systemClock{},
		minRecord: int(DefaultMinRecordTime.Seconds()),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) transitionErr(op string) error {
	err := &TransitionError{Op: op, From: e.state}

	slog.Debug("rejected session transition", "op", op, "state", e.state)

	return err
}

// Start begins the session. It is only valid on an idle engine.
func (e *Engine) Start(opts StartOptions) error {
	if e.state != Idle {
		return e.transitionErr("start")
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeCountdown
		if opts.Technique.Mode == technique.CountUp {
			mode = ModeCountUp
		}
	}

	now := e.clock.Now()

	switch mode {
	case ModeCountdown:
		d := opts.Duration
		if d <= 0 {
			d = opts.Technique.FocusDuration
		}

		if d <= 0 {
			return errMissingDuration.Fmt(opts.Technique.ID)
		}

		e.total = int(d.Seconds())
		e.remaining = e.total
	case ModeCountUp:
		e.total = 0
		e.elapsed = 0
	case ModeUntil:
		e.target = targetAfter(now, opts.Until)
		e.total = int(math.Round(e.target.Sub(now).Seconds()))
		e.remaining = e.total
	default:
		return errUnknownMode.Fmt(mode)
	}

	e.mode = mode
	e.technique = opts.Technique
	e.objective = opts.Objective
	e.tasks = slices.Clone(opts.Tasks)
	e.startTime = now
	e.state = Running

	slog.Info(
		"focus session started",
		"technique", e.technique.ID,
		"mode", e.mode,
		"total", e.total,
	)

	return nil
}

// targetAfter returns the next occurrence of the clock time of until that is
// not earlier than now.
func targetAfter(now, until time.Time) time.Time {
	y, m, d := now.Date()

	target := time.Date(
		y, m, d,
		until.Hour(), until.Minute(), until.Second(), 0,
		now.Location(),
	)

	if target.Before(now) {
		target = target.Add(24 * time.Hour)
	}

	return target
}

// Tick advances the session by one second. Ticks are ignored while paused.
func (e *Engine) Tick() error {
	switch e.state {
	case Paused:
		return nil
	case Running:
	default:
		return e.transitionErr("tick")
	}

	switch e.mode {
	case ModeCountdown:
		if e.remaining > 0 {
			e.remaining--
		}
	case ModeCountUp:
		e.elapsed++
	case ModeUntil:
		left := e.target.Sub(e.clock.Now()).Seconds()
		e.remaining = max(0, int(math.Ceil(left)))
	}

	if e.mode != ModeCountUp && e.remaining == 0 {
		e.finish()

		if e.onComplete != nil {
			e.onComplete(e.Status())
		}
	}

	return nil
}

func (e *Engine) finish() {
	e.endTime = e.clock.Now()
	e.state = Completed

	slog.Info(
		"focus session completed",
		"technique", e.technique.ID,
		"focus_seconds", e.FocusSeconds(),
		"interruptions", len(e.interruptions),
	)
}

// Pause opens a new interruption.
func (e *Engine) Pause() error {
	if e.state != Running {
		return e.transitionErr("pause")
	}

	e.interruptions = append(e.interruptions, models.Interruption{
		PausedAt: e.clock.Now(),
	})
	e.state = Paused

	return nil
}

// Resume closes the most recent interruption.
func (e *Engine) Resume() error {
	if e.state != Paused {
		return e.transitionErr("resume")
	}

	now := e.clock.Now()
	e.interruptions[len(e.interruptions)-1].ResumedAt = &now
	e.state = Running

	return nil
}

// ManualStop ends the session early. Sessions whose focus time does not
// exceed the minimum record time are discarded; the rest wait for review.
func (e *Engine) ManualStop() (State, error) {
	if e.state != Running && e.state != Paused {
		return e.state, e.transitionErr("stop")
	}

	if e.FocusSeconds() > e.minRecord {
		e.finish()

		return e.state, nil
	}

	e.endTime = e.clock.Now()
	e.state = Discarded

	slog.Info("focus session too short to record", "focus_seconds", e.FocusSeconds())

	return e.state, nil
}

// Discard abandons the session without writing anything to storage.
func (e *Engine) Discard() error {
	switch e.state {
	case Running, Paused, Completed:
	default:
		return e.transitionErr("discard")
	}

	if e.endTime.IsZero() {
		e.endTime = e.clock.Now()
	}

	e.state = Discarded

	slog.Info("focus session discarded", "technique", e.technique.ID)

	return nil
}

// Complete saves a reviewed session and returns its record. Tasks listed in
// the review are recorded as completed.
func (e *Engine) Complete(review Review) (*models.FocusSessionRecord, error) {
	if e.state != Completed {
		return nil, e.transitionErr("complete")
	}

	if err := validateRating("productivity", review.ProductivityRating); err != nil {
		return nil, err
	}

	if err := validateRating("focus", review.FocusRating); err != nil {
		return nil, err
	}

	rec := e.buildRecord(review)

	if e.committer != nil {
		if err := e.committer.Commit(rec); err != nil {
			return nil, errCommitFailed.Wrap(err)
		}
	}

	e.record = rec
	e.state = Saved

	slog.Info("focus session saved", "id", rec.ID, "focus_score", rec.FocusScore)

	return rec, nil
}

func validateRating(name string, v int) error {
	if v < 1 || v > 5 {
		return errInvalidRating.Fmt(name, v)
	}

	return nil
}

func (e *Engine) buildRecord(review Review) *models.FocusSessionRecord {
	completed := make([]models.Task, 0, len(review.CompletedTaskIDs))

	for _, t := range e.tasks {
		if slices.Contains(review.CompletedTaskIDs, t.ID) {
			completed = append(completed, t)
		}
	}

	count := len(e.interruptions)
	duration := e.FocusSeconds()
	pause := e.PauseSeconds()

	return &models.FocusSessionRecord{
		ID:                 fmt.Sprintf("focus-%d", e.clock.Now().UnixMilli()),
		StartTime:          e.startTime,
		EndTime:            e.endTime,
		Technique:          e.technique.ID,
		Duration:           duration,
		Objective:          e.objective,
		Tasks:              completed,
		AllTasks:           slices.Clone(e.tasks),
		InterruptionsCount: &count,
		TotalPauseDuration: pause,
		FocusScore:         Score(duration+pause, count, pause),
		ProductivityRating: review.ProductivityRating,
		FocusRating:        review.FocusRating,
		Notes:              review.Notes,
	}
}

// PauseSeconds is the total time spent paused. An interruption that is still
// open counts up to the end of the session, or up to now while it is live.
func (e *Engine) PauseSeconds() int {
	until := e.endTime
	if until.IsZero() {
		until = e.clock.Now()
	}

	var total time.Duration

	for _, in := range e.interruptions {
		end := until
		if in.ResumedAt != nil {
			end = *in.ResumedAt
		}

		if end.After(in.PausedAt) {
			total += end.Sub(in.PausedAt)
		}
	}

	return int(math.Round(total.Seconds()))
}

// FocusSeconds is the focus time elapsed so far.
func (e *Engine) FocusSeconds() int {
	switch e.mode {
	case ModeCountUp:
		return e.elapsed
	case ModeUntil:
		// remaining is frozen while paused, so measure from the clock
		until := e.endTime
		if until.IsZero() {
			until = e.clock.Now()
		}

		wall := int(math.Round(until.Sub(e.startTime).Seconds()))

		return max(0, min(wall, e.total)-e.PauseSeconds())
	default:
		return e.total - e.remaining
	}
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Record returns the saved record, or nil if the session was not saved.
func (e *Engine) Record() *models.FocusSessionRecord {
	return e.record
}

// Status returns a snapshot of the session.
func (e *Engine) Status() Status {
	return Status{
		State:         e.state,
		Mode:          e.mode,
		Technique:     e.technique.ID,
		Objective:     e.objective,
		Tasks:         slices.Clone(e.tasks),
		StartTime:     e.startTime,
		EndTime:       e.endTime,
		Target:        e.target,
		Total:         e.total,
		Remaining:     e.remaining,
		Elapsed:       e.FocusSeconds(),
		Interruptions: len(e.interruptions),
		PauseDuration: e.PauseSeconds(),
	}
}
