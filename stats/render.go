package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/trssantos/wellness-tracker-sub005/internal/timeutil"
	"github.com/trssantos/wellness-tracker-sub005/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No focus sessions found for the specified period"
)

func minutes(seconds int) int {
	return timeutil.Round(float64(seconds) / 60)
}

func barChart(title string, bars pterm.Bars) string {
	if len(bars) == 0 {
		return ""
	}

	header := ui.Blue(fmt.Sprintf("\n%s (minutes)", title))

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func hourlyChart(agg *Aggregate) string {
	var bars pterm.Bars

	for _, b := range agg.Hourly {
		if b.Sessions == 0 {
			continue
		}

		bars = append(bars, pterm.Bar{
			Label: timeutil.HourLabel(b.Hour),
			Value: minutes(b.Duration),
		})
	}

	return barChart("Hourly breakdown", bars)
}

func dailyChart(agg *Aggregate) string {
	bars := make(pterm.Bars, 0, len(agg.Daily))

	for _, b := range agg.Daily {
		bars = append(bars, pterm.Bar{
			Label: b.Day,
			Value: minutes(b.Duration),
		})
	}

	return barChart("Weekday breakdown", bars)
}

func weeklyChart(agg *Aggregate) string {
	bars := make(pterm.Bars, 0, len(agg.Weekly))

	for _, b := range agg.Weekly {
		bars = append(bars, pterm.Bar{
			Label: "Week of " + b.WeekStart,
			Value: minutes(b.Duration),
		})
	}

	return barChart("Weekly breakdown", bars)
}

func techniquesSection(agg *Aggregate) string {
	if len(agg.Techniques) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Techniques")))

	for _, t := range agg.Techniques {
		b.WriteString(fmt.Sprintf(
			"%s: %s (%d sessions)\n",
			t.Technique,
			ui.Green(timeutil.Human(t.Duration)),
			t.Sessions,
		))
	}

	return b.String()
}

func summarySection(agg *Aggregate) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n", ui.Blue("Summary")))
	b.WriteString(fmt.Sprintf("Focus time: %s\n", ui.Green(timeutil.Human(agg.TotalDuration))))
	b.WriteString(fmt.Sprintln("Sessions:", ui.Green(agg.TotalSessions)))
	b.WriteString(fmt.Sprintf(
		"Average session: %s\n",
		ui.Green(timeutil.Human(agg.AverageSessionLength)),
	))
	b.WriteString(fmt.Sprintln("Tasks completed:", ui.Green(agg.TasksCompleted)))

	if agg.SessionsWithData > 0 {
		b.WriteString(fmt.Sprintln("Average focus score:", ui.Green(agg.AverageFocusScore)))
		b.WriteString(fmt.Sprintln("Interruptions:", ui.Green(agg.TotalInterruptions)))
	}

	if agg.MostProductiveHour != nil {
		b.WriteString(fmt.Sprintln(
			"Most productive hour:",
			ui.Green(timeutil.HourLabel(*agg.MostProductiveHour)),
		))
	}

	if agg.MostInterruptedHour != nil {
		b.WriteString(fmt.Sprintln(
			"Most interrupted hour:",
			ui.Red(timeutil.HourLabel(*agg.MostInterruptedHour)),
		))
	}

	return b.String()
}

func periodHeader(agg *Aggregate, now time.Time) string {
	period := "Reporting period: all time"

	if agg.Since != nil {
		period = fmt.Sprintf(
			"Reporting period: %s - %s",
			agg.Since.Format("January 02, 2006"),
			now.Format("January 02, 2006"),
		)
	}

	return pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("%s", period)
}

// Render writes a human readable report of agg to w.
func Render(w io.Writer, agg *Aggregate, now time.Time) {
	if agg.TotalSessions == 0 {
		pterm.Fprintln(w, pterm.Info.Sprint(noSessionsMsg))
		return
	}

	output := fmt.Sprint(
		periodHeader(agg, now),
		summarySection(agg),
		techniquesSection(agg),
		weeklyChart(agg),
		dailyChart(agg),
		hourlyChart(agg),
		"\n",
		ui.Magenta(agg.Insight),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

// RenderJSON writes agg to w as indented JSON.
func RenderJSON(w io.Writer, agg *Aggregate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(agg)
}
