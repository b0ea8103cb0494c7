// Package store persists the wellness document: per-date records keyed by
// ISO date plus a few named top-level keys
package store

import (
	"bytes"
	"encoding/json"
	"maps"
	"regexp"

	"github.com/trssantos/wellness-tracker-sub005/internal/apperr"
)

// Named top-level keys of the document.
const (
	KeyFocusSessions     = "focusSessions"
	KeySettings          = "settings"
	KeyCompletedWorkouts = "completedWorkouts"
)

// DateLayout is the layout of per-date keys.
const DateLayout = "2006-01-02"

var dateKey = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var (
	errDecodeKey = &apperr.Error{
		Message: "unable to decode %q from the store",
	}

	errEncodeKey = &apperr.Error{
		Message: "unable to encode %q for the store",
	}

	errStoreLocked = &apperr.Error{
		Message: "is the tracker already running? Only one instance can use the store at a time",
	}

	errInvalidBackup = &apperr.Error{
		Message: "backup is not a valid wellness document",
	}
)

// Document is the whole persisted state. Values are kept as raw JSON so that
// keys this program does not understand survive a read-modify-write cycle.
type Document map[string]json.RawMessage

// Store reads and writes the whole document. Writes replace the stored
// document; there is no concurrency control between writers.
type Store interface {
	Get() (Document, error)
	Set(doc Document) error
}

// Settings holds the user settings kept in the document.
type Settings struct {
	AIProvider string `json:"aiProvider,omitempty"`
}

// IsDateKey reports whether key is a per-date record key.
func IsDateKey(key string) bool {
	return dateKey.MatchString(key)
}

// Decode unmarshals the value stored under key into v. It reports false if
// the key is absent.
func (d Document) Decode(key string, v any) (bool, error) {
	raw, ok := d[key]
	if !ok || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return true, errDecodeKey.Fmt(key).Wrap(err)
	}

	return true, nil
}

// Encode marshals v and stores it under key.
func (d Document) Encode(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errEncodeKey.Fmt(key).Wrap(err)
	}

	d[key] = b

	return nil
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	c := make(Document, len(d))

	for k, v := range maps.All(d) {
		c[k] = bytes.Clone(v)
	}

	return c
}

// Settings decodes the settings key.
func (d Document) Settings() (Settings, error) {
	var s Settings

	_, err := d.Decode(KeySettings, &s)

	return s, err
}

// Dates returns the per-date keys present in the document.
func (d Document) Dates() []string {
	var dates []string

	for k := range d {
		if IsDateKey(k) {
			dates = append(dates, k)
		}
	}

	return dates
}
