package timer

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/trssantos/wellness-tracker-sub005/internal/focus"
	"github.com/trssantos/wellness-tracker-sub005/internal/models"
)

const defaultRating = 3

type review struct {
	notes        string
	taskIDs      []string
	productivity int
	focus        int
}

func newReview() *review {
	return &review{
		productivity: defaultRating,
		focus:        defaultRating,
	}
}

func (r *review) result() focus.Review {
	return focus.Review{
		Notes:              r.notes,
		CompletedTaskIDs:   r.taskIDs,
		ProductivityRating: r.productivity,
		FocusRating:        r.focus,
	}
}

func ratingOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, 5)

	for i := 1; i <= 5; i++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(i), i))
	}

	return opts
}

func taskOptions(tasks []models.Task) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(tasks))

	for _, task := range tasks {
		opts = append(opts, huh.NewOption(task.Text, task.ID))
	}

	return opts
}

func (t *Timer) buildForm() *huh.Form {
	r := t.review

	fields := []huh.Field{
		huh.NewSelect[int]().
			Title("How productive was this session?").
			Options(ratingOptions()...).
			Value(&r.productivity),
		huh.NewSelect[int]().
			Title("How focused did you feel?").
			Options(ratingOptions()...).
			Value(&r.focus),
	}

	if tasks := t.engine.Status().Tasks; len(tasks) > 0 {
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Which tasks did you complete?").
			Options(taskOptions(tasks)...).
			Value(&r.taskIDs))
	}

	fields = append(fields, huh.NewText().
		Title("Notes").
		CharLimit(1000).
		Value(&r.notes))

	theme := huh.ThemeCharm()
	if !t.opts.DarkTheme {
		theme = huh.ThemeBase()
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(theme).
		WithShowHelp(true)
}

func (t *Timer) openReview() tea.Cmd {
	t.review = newReview()
	t.form = t.buildForm()

	return t.form.Init()
}

// reopenReview shows the form again with the values already entered.
func (t *Timer) reopenReview() tea.Cmd {
	t.form = t.buildForm()

	return t.form.Init()
}
