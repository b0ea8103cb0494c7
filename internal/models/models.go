// Package models defines the records shared by the storage, timer and
// statistics packages
package models

import "time"

// Task is a checklist entry offered to a focus session.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

// Interruption is a single pause within a focus session. ResumedAt is nil
// while the session is still paused.
type Interruption struct {
	PausedAt  time.Time  `json:"pausedAt"`
	ResumedAt *time.Time `json:"resumedAt"`
}

// FocusSessionRecord is a completed focus session. Records are never
// modified after they are written.
type FocusSessionRecord struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	// InterruptionsCount is nil for records written before interruptions were
	// tracked.
	InterruptionsCount *int   `json:"interruptionsCount,omitempty"`
	ID                 string `json:"id"`
	Technique          string `json:"technique"`
	Objective          string `json:"objective,omitempty"`
	Notes              string `json:"notes,omitempty"`
	Tasks              []Task `json:"tasks"`
	AllTasks           []Task `json:"allTasks"`
	// Duration is the elapsed focus time in seconds.
	Duration           int `json:"duration"`
	TotalPauseDuration int `json:"totalPauseDuration"`
	FocusScore         int `json:"focusScore"`
	ProductivityRating int `json:"productivityRating,omitempty"`
	FocusRating        int `json:"focusRating,omitempty"`
}

// HasInterruptionData reports whether the record carries interruption
// tracking fields.
func (r *FocusSessionRecord) HasInterruptionData() bool {
	return r.InterruptionsCount != nil
}

// Interruptions returns the interruption count, or zero for legacy records.
func (r *FocusSessionRecord) Interruptions() int {
	if r.InterruptionsCount == nil {
		return 0
	}

	return *r.InterruptionsCount
}

// TaskCategory is a titled group of checklist items.
type TaskCategory struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}
