package ai

import (
	"encoding/json"
	"strings"

	"github.com/trssantos/wellness-tracker-sub005/internal/apperr"
	"github.com/trssantos/wellness-tracker-sub005/internal/models"
)

var (
	errNoJSONObject = &apperr.Error{
		Message: "no JSON object found",
	}

	errNoTasks = &apperr.Error{
		Message: "no tasks left after validation",
	}
)

// fields checked, in order, when a task item arrives as an object.
var itemTextFields = []string{"task", "text", "description"}

type rawCategory struct {
	Title string            `json:"title"`
	Items []json.RawMessage `json:"items"`
}

type rawPlan struct {
	Categories []rawCategory `json:"categories"`
}

// ExtractJSON returns the text between the first '{' and the last '}' of s.
func ExtractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")

	if start < 0 || end < start {
		return "", ErrMalformedResponse.Wrap(errNoJSONObject)
	}

	return s[start : end+1], nil
}

// ParseTaskPlan extracts and validates a task plan from model output.
func ParseTaskPlan(text string) (TaskPlan, error) {
	obj, err := ExtractJSON(text)
	if err != nil {
		return TaskPlan{}, err
	}

	var raw rawPlan

	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return TaskPlan{}, ErrMalformedResponse.Wrap(err)
	}

	plan := validate(raw.Categories)
	if len(plan.Categories) == 0 {
		return TaskPlan{}, ErrMalformedResponse.Wrap(errNoTasks)
	}

	return plan, nil
}

// validate normalises categories: object items are reduced to their task,
// text or description field, items are trimmed, and empty items and
// categories are dropped.
func validate(categories []rawCategory) TaskPlan {
	plan := TaskPlan{Categories: []models.TaskCategory{}}

	for _, c := range categories {
		var items []string

		for _, raw := range c.Items {
			if text := itemText(raw); text != "" {
				items = append(items, text)
			}
		}

		if len(items) == 0 {
			continue
		}

		title := strings.TrimSpace(c.Title)
		if title == "" {
			title = "Tasks"
		}

		plan.Categories = append(plan.Categories, models.TaskCategory{
			Title: title,
			Items: items,
		})
	}

	return plan
}

func itemText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}

	for _, field := range itemTextFields {
		if v, ok := obj[field].(string); ok {
			if text := strings.TrimSpace(v); text != "" {
				return text
			}
		}
	}

	return ""
}
