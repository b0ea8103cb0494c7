package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() Document {
	return Document{
		"2024-03-04":     json.RawMessage(`{"checked":{"Write report":true},"mood":"happy"}`),
		KeySettings:      json.RawMessage(`{"aiProvider":"gemini","theme":"dark"}`),
		KeyFocusSessions: json.RawMessage(`[]`),
	}
}

func TestBoltRoundTrip(t *testing.T) {
	db, err := NewBolt(filepath.Join(t.TempDir(), "wellness.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	doc, err := db.Get()
	require.NoError(t, err)
	assert.Empty(t, doc)

	require.NoError(t, db.Set(sampleDoc()))

	got, err := db.Get()
	require.NoError(t, err)
	assert.Equal(t, sampleDoc(), got)

	// keys missing from the new document are removed
	next := sampleDoc()
	delete(next, "2024-03-04")
	require.NoError(t, db.Set(next))

	got, err = db.Get()
	require.NoError(t, err)
	assert.NotContains(t, got, "2024-03-04")
	assert.Len(t, got, 2)
}

func TestBoltLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellness.db")

	db, err := NewBolt(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	_, err = NewBolt(path)
	assert.ErrorIs(t, err, errStoreLocked)
}

func TestMemoryCopiesDocument(t *testing.T) {
	m := NewMemory(sampleDoc())

	doc, err := m.Get()
	require.NoError(t, err)

	doc[KeySettings][0] = '['
	delete(doc, "2024-03-04")

	again, err := m.Get()
	require.NoError(t, err)
	assert.Equal(t, sampleDoc(), again)
}

func TestDocumentHelpers(t *testing.T) {
	doc := sampleDoc()

	s, err := doc.Settings()
	require.NoError(t, err)
	assert.Equal(t, "gemini", s.AIProvider)

	var missing []int
	found, err := doc.Decode(KeyCompletedWorkouts, &missing)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, doc.Encode(KeyCompletedWorkouts, []int{1, 2}))
	assert.JSONEq(t, `[1,2]`, string(doc[KeyCompletedWorkouts]))

	assert.Equal(t, []string{"2024-03-04"}, doc.Dates())
	assert.True(t, IsDateKey("2024-12-31"))
	assert.False(t, IsDateKey(KeyFocusSessions))

	doc["broken"] = json.RawMessage(`{`)
	var v map[string]any
	_, err = doc.Decode("broken", &v)
	assert.Error(t, err)
}

func TestExportImport(t *testing.T) {
	for _, compress := range []bool{false, true} {
		src := NewMemory(sampleDoc())

		var buf bytes.Buffer
		require.NoError(t, Export(src, &buf, compress))

		if compress {
			assert.True(t, bytes.HasPrefix(buf.Bytes(), zstdMagic))
		}

		dst := NewMemory(nil)
		require.NoError(t, Import(dst, &buf))

		got, err := dst.Get()
		require.NoError(t, err)

		want := sampleDoc()
		require.Len(t, got, len(want))

		for k, v := range want {
			assert.JSONEq(t, string(v), string(got[k]))
		}
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	dst := NewMemory(sampleDoc())

	err := Import(dst, bytes.NewBufferString("not json"))
	assert.True(t, errors.Is(err, errInvalidBackup))

	err = Import(dst, bytes.NewBufferString("null"))
	assert.True(t, errors.Is(err, errInvalidBackup))

	got, _ := dst.Get()
	assert.Equal(t, sampleDoc(), got)
}
