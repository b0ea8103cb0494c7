// Package technique holds the catalog of focus techniques a session can be
// started with
package technique

import (
	"cmp"
	"slices"
	"time"
)

// TimerMode describes how a technique measures focus time.
type TimerMode string

const (
	Countdown TimerMode = "countdown"
	CountUp   TimerMode = "count-up"
)

const (
	Pomodoro   = "pomodoro"
	Flowtime   = "flowtime"
	FiftyTwo   = "52-17"
	Ultradian  = "ultradian"
	ADHDSprint = "adhd-sprint"
	ADHDFlow   = "adhd-flow"
	Custom     = "custom"
)

// Technique is a static catalog entry. Durations of zero mean the value does
// not apply to the technique.
type Technique struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Description       string        `json:"description"`
	Mode              TimerMode     `json:"timerMode"`
	FocusDuration     time.Duration `json:"focusDuration"`
	BreakDuration     time.Duration `json:"breakDuration"`
	LongBreakDuration time.Duration `json:"longBreakDuration"`
	DefaultCycles     int           `json:"defaultCycles,omitempty"`
	LongBreakAfter    int           `json:"longBreakAfter,omitempty"`
	HasCycles         bool          `json:"hasCycles"`
}

var catalog = map[string]Technique{
	Pomodoro: {
		ID:                Pomodoro,
		Name:              "Pomodoro Technique",
		Description:       "25 minutes of focus followed by a short break",
		Mode:              Countdown,
		FocusDuration:     25 * time.Minute,
		BreakDuration:     5 * time.Minute,
		LongBreakDuration: 15 * time.Minute,
		HasCycles:         true,
		DefaultCycles:     4,
		LongBreakAfter:    4,
	},
	Flowtime: {
		ID:          Flowtime,
		Name:        "Flowtime",
		Description: "Work until your focus fades, then take a proportional break",
		Mode:        CountUp,
	},
	FiftyTwo: {
		ID:            FiftyTwo,
		Name:          "52/17 Method",
		Description:   "52 minutes of focus followed by a 17 minute break",
		Mode:          Countdown,
		FocusDuration: 52 * time.Minute,
		BreakDuration: 17 * time.Minute,
	},
	Ultradian: {
		ID:            Ultradian,
		Name:          "Ultradian Rhythm",
		Description:   "90 minute deep work blocks aligned with natural energy cycles",
		Mode:          Countdown,
		FocusDuration: 90 * time.Minute,
		BreakDuration: 20 * time.Minute,
	},
	ADHDSprint: {
		ID:                ADHDSprint,
		Name:              "ADHD Sprint",
		Description:       "Short 15 minute sprints with frequent breaks",
		Mode:              Countdown,
		FocusDuration:     15 * time.Minute,
		BreakDuration:     5 * time.Minute,
		LongBreakDuration: 15 * time.Minute,
		HasCycles:         true,
		DefaultCycles:     4,
		LongBreakAfter:    3,
	},
	ADHDFlow: {
		ID:          ADHDFlow,
		Name:        "ADHD Flow",
		Description: "Open-ended focus with no pressure of a countdown",
		Mode:        CountUp,
	},
	Custom: {
		ID:          Custom,
		Name:        "Custom Timer",
		Description: "Pick your own focus duration",
		Mode:        Countdown,
	},
}

// Lookup returns the technique registered under id.
func Lookup(id string) (Technique, bool) {
	t, ok := catalog[id]

	return t, ok
}

// DisplayName maps a technique id to its display name. Unknown ids are
// returned unchanged.
func DisplayName(id string) string {
	if t, ok := catalog[id]; ok {
		return t.Name
	}

	return id
}

// All returns every technique ordered by id.
func All() []Technique {
	list := make([]Technique, 0, len(catalog))

	for _, t := range catalog {
		list = append(list, t)
	}

	slices.SortFunc(list, func(a, b Technique) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return list
}
