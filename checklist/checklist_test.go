package checklist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trssantos/wellness-tracker-sub005/internal/models"
	"github.com/trssantos/wellness-tracker-sub005/store"
)

func newStore(t *testing.T) (*Store, *store.Memory) {
	t.Helper()

	mem := store.NewMemory(store.Document{
		"2024-03-04": json.RawMessage(`{
			"mood": "calm",
			"checked": {"Stretch": true},
			"aiTasks": [{"title": "Work", "items": ["Task 10", "Task 2", "Task 1"]}],
			"customTasks": [{"title": "Home", "items": ["Laundry", "Task 2"]}]
		}`),
	})

	return New(mem), mem
}

func TestMarkDonePreservesOtherFields(t *testing.T) {
	doc := store.Document{
		"2024-03-04": json.RawMessage(`{"mood":"calm","checked":{"Stretch":true}}`),
	}

	err := MarkDone(doc, []models.Task{
		{ID: "1", Text: "Write report", Date: "2024-03-04"},
		{ID: "2", Text: "Plan week", Date: "2024-03-05"},
		{ID: "3", Text: "No date"},
	})
	require.NoError(t, err)

	assert.JSONEq(
		t,
		`{"mood":"calm","checked":{"Stretch":true,"Write report":true}}`,
		string(doc["2024-03-04"]),
	)
	assert.JSONEq(t, `{"checked":{"Plan week":true}}`, string(doc["2024-03-05"]))
	assert.Len(t, doc, 2)
}

func TestMarkDoneInvalidDate(t *testing.T) {
	doc := store.Document{}

	err := MarkDone(doc, []models.Task{{Text: "x", Date: "tomorrow"}})
	assert.ErrorIs(t, err, errInvalidDate)
	assert.Empty(t, doc)
}

func TestItemsNaturalOrder(t *testing.T) {
	s, _ := newStore(t)

	items, err := s.Items("2024-03-04")
	require.NoError(t, err)

	want := []Item{
		{Text: "Task 1", Category: "Work"},
		{Text: "Task 2", Category: "Work"},
		{Text: "Task 10", Category: "Work"},
		{Text: "Laundry", Category: "Home"},
		{Text: "Stretch", Checked: true},
	}

	assert.Equal(t, want, items)
}

func TestCheckAndTasks(t *testing.T) {
	s, mem := newStore(t)

	require.NoError(t, s.Check("2024-03-04", "Task 2", true))
	require.NoError(t, s.Check("2024-03-04", "Stretch", false))

	tasks, err := s.Tasks("2024-03-04")
	require.NoError(t, err)

	var texts []string
	for _, task := range tasks {
		assert.NotEmpty(t, task.ID)
		assert.Equal(t, "2024-03-04", task.Date)
		texts = append(texts, task.Text)
	}

	assert.Equal(t, []string{"Task 1", "Task 10", "Laundry"}, texts)

	doc, err := mem.Get()
	require.NoError(t, err)

	var day struct {
		Mood string `json:"mood"`
	}

	_, err = doc.Decode("2024-03-04", &day)
	require.NoError(t, err)
	assert.Equal(t, "calm", day.Mood)
}

func TestSetCategories(t *testing.T) {
	s, _ := newStore(t)

	cats := []models.TaskCategory{{Title: "Morning", Items: []string{"Walk"}}}
	require.NoError(t, s.SetCategories("2024-03-06", KeyAITasks, cats))

	items, err := s.Items("2024-03-06")
	require.NoError(t, err)
	assert.Equal(t, []Item{{Text: "Walk", Category: "Morning"}}, items)

	_, err = s.Items("March 6")
	assert.ErrorIs(t, err, errInvalidDate)
}
