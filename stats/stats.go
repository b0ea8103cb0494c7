// Package stats reduces saved focus sessions into chart-ready aggregates
package stats

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/trssantos/wellness-tracker-sub005/internal/apperr"
	"github.com/trssantos/wellness-tracker-sub005/internal/models"
	"github.com/trssantos/wellness-tracker-sub005/internal/technique"
	"github.com/trssantos/wellness-tracker-sub005/internal/timeutil"
	"github.com/trssantos/wellness-tracker-sub005/store"
)

// Window is the reporting period of an aggregate.
type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
	WindowAll   Window = "all"
)

// Windows lists the supported reporting periods.
var Windows = []Window{WindowDay, WindowWeek, WindowMonth, WindowYear, WindowAll}

var errInvalidWindow = &apperr.Error{
	Message: "invalid period %q: expected one of day, week, month, year, all",
}

// ParseWindow converts a period name into a Window.
func ParseWindow(s string) (Window, error) {
	w := Window(strings.ToLower(strings.TrimSpace(s)))

	if !slices.Contains(Windows, w) {
		return "", errInvalidWindow.Fmt(s)
	}

	return w, nil
}

// Since returns the earliest start time included in the window. Only the day
// window is aligned to local midnight; the others reach back from now. The
// zero time is returned for WindowAll.
func (w Window) Since(now time.Time) time.Time {
	switch w {
	case WindowDay:
		return timeutil.RoundToStart(now)
	case WindowWeek:
		return now.AddDate(0, 0, -timeutil.DaysInAWeek)
	case WindowMonth:
		return now.AddDate(0, -1, 0)
	case WindowYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

// HourBucket holds the totals for one hour of the day. Interruption fields
// only count sessions that carry interruption data.
type HourBucket struct {
	Hour             int `json:"hour"`
	Duration         int `json:"duration"`
	Sessions         int `json:"sessions"`
	Interruptions    int `json:"interruptions"`
	PauseDuration    int `json:"pauseDuration"`
	SessionsWithData int `json:"sessionsWithData"`
}

// AvgInterruptions is the mean interruption count of the sessions with
// interruption data that started in this hour.
func (b HourBucket) AvgInterruptions() float64 {
	if b.SessionsWithData == 0 {
		return 0
	}

	return float64(b.Interruptions) / float64(b.SessionsWithData)
}

// DayBucket holds the totals for one day of the week.
type DayBucket struct {
	Day      string `json:"day"`
	Duration int    `json:"duration"`
	Sessions int    `json:"sessions"`
}

// WeekBucket holds the totals for the week starting on WeekStart, a Sunday.
type WeekBucket struct {
	WeekStart string `json:"weekStart"`
	Duration  int    `json:"duration"`
	Sessions  int    `json:"sessions"`
}

// TechniqueShare is the focus time spent with one technique.
type TechniqueShare struct {
	Technique string `json:"technique"`
	Duration  int    `json:"duration"`
	Sessions  int    `json:"sessions"`
}

// Aggregate summarises the sessions of a window. Durations are in seconds.
type Aggregate struct {
	Since                *time.Time       `json:"since"`
	MostProductiveHour   *int             `json:"mostProductiveHour"`
	MostInterruptedHour  *int             `json:"mostInterruptedHour"`
	Window               Window           `json:"window"`
	Insight              string           `json:"insight"`
	Weekly               []WeekBucket     `json:"weekly"`
	Techniques           []TechniqueShare `json:"techniques"`
	Daily                [7]DayBucket     `json:"daily"`
	Hourly               [24]HourBucket   `json:"hourly"`
	TotalDuration        int              `json:"totalDuration"`
	TotalSessions        int              `json:"totalSessions"`
	AverageSessionLength int              `json:"averageSessionLength"`
	TasksCompleted       int              `json:"tasksCompleted"`
	AverageFocusScore    int              `json:"averageFocusScore"`
	TotalInterruptions   int              `json:"totalInterruptions"`
	TotalPauseDuration   int              `json:"totalPauseDuration"`
	SessionsWithData     int              `json:"sessionsWithData"`
}

// Compute reduces the sessions that started within w into an aggregate.
// Times are bucketed in the location of now.
func Compute(
	sessions []models.FocusSessionRecord,
	w Window,
	now time.Time,
) Aggregate {
	return ComputeSince(sessions, w.Since(now), now, w)
}

// ComputeSince is like Compute with an explicit start time. A zero since
// includes every session.
func ComputeSince(
	sessions []models.FocusSessionRecord,
	since, now time.Time,
	w Window,
) Aggregate {
	agg := newAggregate(w)

	if !since.IsZero() {
		agg.Since = &since
	}

	loc := now.Location()
	weeks := make(map[string]*WeekBucket)
	techniques := make(map[string]*TechniqueShare)

	var scoreSum int

	for i := range sessions {
		s := &sessions[i]

		if !since.IsZero() && s.StartTime.Before(since) {
			continue
		}

		start := s.StartTime.In(loc)

		agg.TotalSessions++
		agg.TotalDuration += s.Duration
		agg.TasksCompleted += len(s.Tasks)

		hb := &agg.Hourly[start.Hour()]
		hb.Duration += s.Duration
		hb.Sessions++

		db := &agg.Daily[start.Weekday()]
		db.Duration += s.Duration
		db.Sessions++

		key := timeutil.WeekStart(start).Format(store.DateLayout)

		wb, ok := weeks[key]
		if !ok {
			wb = &WeekBucket{WeekStart: key}
			weeks[key] = wb
		}

		wb.Duration += s.Duration
		wb.Sessions++

		name := technique.DisplayName(s.Technique)

		ts, ok := techniques[name]
		if !ok {
			ts = &TechniqueShare{Technique: name}
			techniques[name] = ts
		}

		ts.Duration += s.Duration
		ts.Sessions++

		if !s.HasInterruptionData() {
			continue
		}

		hb.Interruptions += s.Interruptions()
		hb.PauseDuration += s.TotalPauseDuration
		hb.SessionsWithData++

		agg.SessionsWithData++
		agg.TotalInterruptions += s.Interruptions()
		agg.TotalPauseDuration += s.TotalPauseDuration
		scoreSum += s.FocusScore
	}

	if agg.TotalSessions == 0 {
		agg.Insight = insight(nil, nil)
		return agg
	}

	agg.AverageSessionLength = timeutil.Round(
		float64(agg.TotalDuration) / float64(agg.TotalSessions),
	)

	if agg.SessionsWithData > 0 {
		agg.AverageFocusScore = timeutil.Round(
			float64(scoreSum) / float64(agg.SessionsWithData),
		)
	}

	for _, wb := range weeks {
		agg.Weekly = append(agg.Weekly, *wb)
	}

	slices.SortFunc(agg.Weekly, func(a, b WeekBucket) int {
		return strings.Compare(a.WeekStart, b.WeekStart)
	})

	for _, ts := range techniques {
		agg.Techniques = append(agg.Techniques, *ts)
	}

	slices.SortFunc(agg.Techniques, func(a, b TechniqueShare) int {
		if c := cmp.Compare(b.Duration, a.Duration); c != 0 {
			return c
		}

		return strings.Compare(a.Technique, b.Technique)
	})

	agg.MostProductiveHour = argmax(agg.Hourly[:], func(b HourBucket) int {
		return b.Duration
	})

	agg.MostInterruptedHour = argmax(agg.Hourly[:], func(b HourBucket) int {
		return b.Interruptions
	})

	agg.Insight = insight(agg.MostProductiveHour, agg.MostInterruptedHour)

	return agg
}

func newAggregate(w Window) Aggregate {
	agg := Aggregate{
		Window:     w,
		Weekly:     []WeekBucket{},
		Techniques: []TechniqueShare{},
	}

	for h := range agg.Hourly {
		agg.Hourly[h].Hour = h
	}

	for d := range agg.Daily {
		agg.Daily[d].Day = time.Weekday(d).String()
	}

	return agg
}

// argmax returns the hour with the largest positive value. Ties go to the
// earliest hour. It returns nil when every value is zero.
func argmax(buckets []HourBucket, value func(HourBucket) int) *int {
	best, bestValue := -1, 0

	for i, b := range buckets {
		if v := value(b); v > bestValue {
			best, bestValue = i, v
		}
	}

	if best < 0 {
		return nil
	}

	return &best
}

func insight(productive, interrupted *int) string {
	switch {
	case productive == nil:
		return "Complete a few focus sessions to discover your most productive hours."
	case interrupted == nil:
		return fmt.Sprintf(
			"You focus best around %s and have not recorded any interruptions. Keep it up!",
			timeutil.HourLabel(*productive),
		)
	case *productive == *interrupted:
		return fmt.Sprintf(
			"Your most productive hour, %s, is also when you get interrupted most. Protecting that time could make it even better.",
			timeutil.HourLabel(*productive),
		)
	default:
		return fmt.Sprintf(
			"You focus best around %s, while interruptions peak around %s. Schedule deep work away from that time.",
			timeutil.HourLabel(*productive),
			timeutil.HourLabel(*interrupted),
		)
	}
}
