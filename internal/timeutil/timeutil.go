// Package timeutil provides utility functions for working with the times and
// durations shown by the tracker.
package timeutil

import (
	"fmt"
	"math"
	"time"

	dateparser "github.com/markusmobius/go-dateparser"
)

const (
	HoursInADay = 24
	DaysInAWeek = 7
)

// Round rounds a value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the Sunday that starts the week containing t.
func WeekStart(t time.Time) time.Time {
	return RoundToStart(t).AddDate(0, 0, -int(t.Weekday()))
}

// HourLabel formats an hour of the day as HH:00.
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// Clock formats seconds as MM:SS, or H:MM:SS once an hour is reached.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%02d:%02d", m, s)
}

// Human formats seconds as a short duration such as "1h 5m" or "45s".
func Human(seconds int) string {
	d := time.Duration(seconds) * time.Second

	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	case d >= time.Minute:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FromStr parses an absolute or relative date expression such as "9am",
// "yesterday" or "2 weeks ago" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: now,
	}, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}
