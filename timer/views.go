package timer

import (
	"fmt"
	"strings"

	"github.com/trssantos/wellness-tracker-sub005/internal/focus"
	"github.com/trssantos/wellness-tracker-sub005/internal/technique"
	"github.com/trssantos/wellness-tracker-sub005/internal/timeutil"
)

func (t *Timer) clockFormat() string {
	if t.opts.TwentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}

func (t *Timer) header(st focus.Status) string {
	h := t.style.technique.Render(technique.DisplayName(st.Technique))

	if st.Objective != "" {
		h += t.style.secondary.Render(st.Objective)
	}

	return h
}

func (t *Timer) counter(st focus.Status) string {
	var s strings.Builder

	switch st.Mode {
	case focus.ModeCountUp:
		s.WriteString(t.style.main.Render(timeutil.Clock(st.Elapsed)))
	default:
		s.WriteString(t.style.main.Render(timeutil.Clock(st.Remaining)))

		percent := 1.0
		if st.Total > 0 {
			percent = float64(st.Total-st.Remaining) / float64(st.Total)
		}

		s.WriteString("\n\n")
		s.WriteString(t.progress.ViewAs(percent))
	}

	if st.State == focus.Paused {
		s.WriteString(" ")
		s.WriteString(t.style.paused.Render("[paused]"))
	}

	return s.String()
}

func (t *Timer) details(st focus.Status) string {
	var parts []string

	if st.Mode == focus.ModeUntil && !st.Target.IsZero() {
		parts = append(parts, "until "+st.Target.Format(t.clockFormat()))
	}

	parts = append(parts, fmt.Sprintf("%d interruptions", st.Interruptions))

	if st.PauseDuration > 0 {
		parts = append(parts, "paused "+timeutil.Human(st.PauseDuration))
	}

	if len(st.Tasks) > 0 {
		parts = append(parts, fmt.Sprintf("%d tasks", len(st.Tasks)))
	}

	return t.style.hint.Render(strings.Join(parts, " · "))
}

func (t *Timer) View() string {
	if t.message != "" {
		return ""
	}

	st := t.engine.Status()

	var b strings.Builder

	b.WriteString(t.header(st))
	b.WriteString("\n\n")

	if t.form != nil {
		b.WriteString(t.style.main.Render("Session complete: " + timeutil.Human(st.Elapsed)))
		b.WriteString("\n\n")

		if t.err != nil {
			b.WriteString(t.style.err.Render(t.err.Error()))
			b.WriteString("\n\n")
		}

		b.WriteString(t.form.View())

		return t.style.base.Render(b.String())
	}

	b.WriteString(t.counter(st))
	b.WriteString("\n\n")
	b.WriteString(t.details(st))

	if t.err != nil {
		b.WriteString("\n")
		b.WriteString(t.style.err.Render(t.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(t.help.View(t.keys))

	return t.style.base.Render(b.String())
}
