package store

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"
)

const documentBucket = "document"

// Bolt is a Store backed by a BoltDB file. Each top-level key of the
// document is stored as its own bolt key.
type Bolt struct {
	db   *bolt.DB
	path string
}

// open creates or opens a database and locks it.
func open(path string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errStoreLocked
		}

		return nil, err
	}

	return db, nil
}

// NewBolt opens the database at path, creating it if needed.
func NewBolt(path string) (*Bolt, error) {
	db, err := open(path)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(documentBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	slog.Debug("store opened", "path", path)

	return &Bolt{db: db, path: path}, nil
}

// Get reads the whole document.
func (b *Bolt) Get() (Document, error) {
	doc := make(Document)

	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(documentBucket)).ForEach(func(k, v []byte) error {
			// values are only valid for the life of the transaction
			doc[string(k)] = bytes.Clone(v)
			return nil
		})
	})

	return doc, err
}

// Set replaces the stored document with doc in a single transaction.
func (b *Bolt) Set(doc Document) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(documentBucket))
		if err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}

		bucket, err := tx.CreateBucket([]byte(documentBucket))
		if err != nil {
			return err
		}

		for k, v := range doc {
			if err := bucket.Put([]byte(k), v); err != nil {
				return err
			}
		}

		return nil
	})
}

// Path returns the location of the database file.
func (b *Bolt) Path() string {
	return b.path
}

// Close releases the database lock.
func (b *Bolt) Close() error {
	return b.db.Close()
}
