// Package history keeps the append-only list of saved focus sessions
package history

import (
	"log/slog"
	"slices"

	"github.com/trssantos/wellness-tracker-sub005/checklist"
	"github.com/trssantos/wellness-tracker-sub005/internal/apperr"
	"github.com/trssantos/wellness-tracker-sub005/internal/models"
	"github.com/trssantos/wellness-tracker-sub005/store"
)

// ErrNotFound is returned when no session matches an id.
var ErrNotFound = &apperr.Error{
	Message: "focus session not found: %s",
}

// Store reads and writes the focusSessions key of the document. Records are
// kept in the order they were appended.
type Store struct {
	db store.Store
}

// New returns a history backed by db.
func New(db store.Store) *Store {
	return &Store{db: db}
}

func load(doc store.Document) ([]models.FocusSessionRecord, error) {
	var sessions []models.FocusSessionRecord

	_, err := doc.Decode(store.KeyFocusSessions, &sessions)

	return sessions, err
}

// appendRecord adds rec to the end of the sessions list held in doc.
func appendRecord(doc store.Document, rec *models.FocusSessionRecord) (int, error) {
	sessions, err := load(doc)
	if err != nil {
		return 0, err
	}

	sessions = append(sessions, *rec)

	return len(sessions), doc.Encode(store.KeyFocusSessions, sessions)
}

// Append adds rec to the end of the history. Duplicates are not detected.
func (s *Store) Append(rec *models.FocusSessionRecord) error {
	doc, err := s.db.Get()
	if err != nil {
		return err
	}

	n, err := appendRecord(doc, rec)
	if err != nil {
		return err
	}

	slog.Debug("focus session appended", "id", rec.ID, "total", n)

	return s.db.Set(doc)
}

// Commit saves a completed session: the tasks it completed are checked off in
// their date records and the record is appended, in a single write.
func (s *Store) Commit(rec *models.FocusSessionRecord) error {
	doc, err := s.db.Get()
	if err != nil {
		return err
	}

	if err := checklist.MarkDone(doc, rec.Tasks); err != nil {
		return err
	}

	if _, err := appendRecord(doc, rec); err != nil {
		return err
	}

	if err := s.db.Set(doc); err != nil {
		return err
	}

	slog.Info(
		"focus session committed",
		"id", rec.ID,
		"duration", rec.Duration,
		"tasks", len(rec.Tasks),
	)

	return nil
}

// All returns every saved session in append order.
func (s *Store) All() ([]models.FocusSessionRecord, error) {
	doc, err := s.db.Get()
	if err != nil {
		return nil, err
	}

	return load(doc)
}

// DeleteByID removes the first session with the given id. It reports whether
// a session was removed.
func (s *Store) DeleteByID(id string) (bool, error) {
	doc, err := s.db.Get()
	if err != nil {
		return false, err
	}

	sessions, err := load(doc)
	if err != nil {
		return false, err
	}

	i := slices.IndexFunc(sessions, func(r models.FocusSessionRecord) bool {
		return r.ID == id
	})
	if i < 0 {
		return false, nil
	}

	sessions = slices.Delete(sessions, i, i+1)

	if err := doc.Encode(store.KeyFocusSessions, sessions); err != nil {
		return false, err
	}

	slog.Info("focus session deleted", "id", id)

	return true, s.db.Set(doc)
}

// Get returns the first session with the given id.
func (s *Store) Get(id string) (*models.FocusSessionRecord, error) {
	sessions, err := s.All()
	if err != nil {
		return nil, err
	}

	for i := range sessions {
		if sessions[i].ID == id {
			return &sessions[i], nil
		}
	}

	return nil, ErrNotFound.Fmt(id)
}
