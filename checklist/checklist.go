// Package checklist reads and updates the per-date task checklists of the
// wellness document
package checklist

import (
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/maruel/natural"

	"github.com/trssantos/wellness-tracker-sub005/internal/apperr"
	"github.com/trssantos/wellness-tracker-sub005/internal/models"
	"github.com/trssantos/wellness-tracker-sub005/store"
)

// Keys of a date record used by the checklist.
const (
	keyChecked     = "checked"
	KeyAITasks     = "aiTasks"
	KeyCustomTasks = "customTasks"
)

var errInvalidDate = &apperr.Error{
	Message: "invalid date %q: expected YYYY-MM-DD",
}

// Item is a task listed for a date.
type Item struct {
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
	Checked  bool   `json:"checked"`
}

// day is a date record. Fields other than the ones the checklist uses are
// carried over untouched.
type day map[string]json.RawMessage

func loadDay(doc store.Document, date string) (day, error) {
	d := make(day)

	if _, err := doc.Decode(date, &d); err != nil {
		return nil, err
	}

	return d, nil
}

func (d day) checked() (map[string]bool, error) {
	checked := make(map[string]bool)

	raw, ok := d[keyChecked]
	if !ok {
		return checked, nil
	}

	if err := json.Unmarshal(raw, &checked); err != nil {
		return nil, err
	}

	return checked, nil
}

func (d day) categories(key string) ([]models.TaskCategory, error) {
	var cats []models.TaskCategory

	raw, ok := d[key]
	if !ok {
		return nil, nil
	}

	if err := json.Unmarshal(raw, &cats); err != nil {
		return nil, err
	}

	return cats, nil
}

func (d day) set(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	d[key] = b

	return nil
}

// MarkDone sets checked[task.Text] to true on the date record of every task
// in doc. Tasks without a date are ignored.
func MarkDone(doc store.Document, tasks []models.Task) error {
	byDate := make(map[string][]string)

	for _, t := range tasks {
		if t.Date == "" || strings.TrimSpace(t.Text) == "" {
			continue
		}

		byDate[t.Date] = append(byDate[t.Date], t.Text)
	}

	for date, texts := range byDate {
		if !store.IsDateKey(date) {
			return errInvalidDate.Fmt(date)
		}

		d, err := loadDay(doc, date)
		if err != nil {
			return err
		}

		checked, err := d.checked()
		if err != nil {
			return err
		}

		for _, text := range texts {
			checked[text] = true
		}

		if err := d.set(keyChecked, checked); err != nil {
			return err
		}

		if err := doc.Encode(date, d); err != nil {
			return err
		}

		slog.Debug("checklist tasks marked done", "date", date, "count", len(texts))
	}

	return nil
}

// Store is the checklist view of a document store.
type Store struct {
	db store.Store
}

// New returns a checklist backed by db.
func New(db store.Store) *Store {
	return &Store{db: db}
}

// MarkDone checks off tasks in their date records.
func (s *Store) MarkDone(tasks []models.Task) error {
	doc, err := s.db.Get()
	if err != nil {
		return err
	}

	if err := MarkDone(doc, tasks); err != nil {
		return err
	}

	return s.db.Set(doc)
}

// Items lists the tasks known for a date: categorised AI and custom tasks
// first, then any checked entries that belong to no category. Items are in
// natural order within each category.
func (s *Store) Items(date string) ([]Item, error) {
	if !store.IsDateKey(date) {
		return nil, errInvalidDate.Fmt(date)
	}

	doc, err := s.db.Get()
	if err != nil {
		return nil, err
	}

	d, err := loadDay(doc, date)
	if err != nil {
		return nil, err
	}

	checked, err := d.checked()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)

	var items []Item

	for _, key := range []string{KeyAITasks, KeyCustomTasks} {
		cats, err := d.categories(key)
		if err != nil {
			return nil, err
		}

		for _, c := range cats {
			texts := slices.Clone(c.Items)
			slices.SortFunc(texts, compareNatural)

			for _, text := range texts {
				if seen[text] {
					continue
				}

				seen[text] = true

				items = append(items, Item{
					Text:     text,
					Category: c.Title,
					Checked:  checked[text],
				})
			}
		}
	}

	var rest []string

	for text := range checked {
		if !seen[text] {
			rest = append(rest, text)
		}
	}

	slices.SortFunc(rest, compareNatural)

	for _, text := range rest {
		items = append(items, Item{Text: text, Checked: checked[text]})
	}

	return items, nil
}

func compareNatural(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	default:
		return 0
	}
}

// Tasks converts the unchecked items of a date into tasks that can be
// attached to a focus session.
func (s *Store) Tasks(date string) ([]models.Task, error) {
	items, err := s.Items(date)
	if err != nil {
		return nil, err
	}

	var tasks []models.Task

	for _, it := range items {
		if it.Checked {
			continue
		}

		tasks = append(tasks, NewTask(date, it.Text))
	}

	return tasks, nil
}

// NewTask creates a task with a fresh id.
func NewTask(date, text string) models.Task {
	return models.Task{
		ID:   uuid.NewString(),
		Text: text,
		Date: date,
	}
}

// SetCategories replaces the categories stored under key (KeyAITasks or
// KeyCustomTasks) for a date.
func (s *Store) SetCategories(date, key string, cats []models.TaskCategory) error {
	if !store.IsDateKey(date) {
		return errInvalidDate.Fmt(date)
	}

	doc, err := s.db.Get()
	if err != nil {
		return err
	}

	d, err := loadDay(doc, date)
	if err != nil {
		return err
	}

	if err := d.set(key, cats); err != nil {
		return err
	}

	if err := doc.Encode(date, d); err != nil {
		return err
	}

	return s.db.Set(doc)
}

// Check sets the checked state of a task on a date.
func (s *Store) Check(date, text string, done bool) error {
	if !store.IsDateKey(date) {
		return errInvalidDate.Fmt(date)
	}

	doc, err := s.db.Get()
	if err != nil {
		return err
	}

	d, err := loadDay(doc, date)
	if err != nil {
		return err
	}

	checked, err := d.checked()
	if err != nil {
		return err
	}

	if done {
		checked[text] = true
	} else {
		delete(checked, text)
	}

	if err := d.set(keyChecked, checked); err != nil {
		return err
	}

	if err := doc.Encode(date, d); err != nil {
		return err
	}

	return s.db.Set(doc)
}
