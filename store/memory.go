package store

import "sync"

// Memory is an in-process Store. Every Get and Set copies the document.
type Memory struct {
	doc Document
	mu  sync.Mutex
}

// NewMemory returns a Memory store seeded with doc.
func NewMemory(doc Document) *Memory {
	if doc == nil {
		doc = make(Document)
	}

	return &Memory{doc: doc.Clone()}
}

func (m *Memory) Get() (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.doc.Clone(), nil
}

func (m *Memory) Set(doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.doc = doc.Clone()

	return nil
}
