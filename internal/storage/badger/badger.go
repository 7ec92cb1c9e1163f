// Package badger provides an embedded storage.Backend on BadgerDB.
//
// Each document is stored under the key "<collection>/<id>" as JSON. Identifiers
// are time-ordered, so a prefix scan returns documents in insertion order.
package badger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/mmynk/restapis/internal/storage"
)

var _ storage.Backend = (*BadgerStore)(nil)

// BadgerStore implements storage.Backend using BadgerDB.
type BadgerStore struct {
	db *badger.DB
}

// New opens (or creates) a Badger database in dir. An empty dir opens an
// in-memory database, which is discarded on Close.
func New(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(slogLogger{slog.Default().With("component", "badger")})
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func documentKey(collection, id string) []byte {
	return []byte(collection + "/" + id)
}

func collectionPrefix(collection string) []byte {
	return []byte(collection + "/")
}

// Insert stores a new document.
func (s *BadgerStore) Insert(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		key := documentKey(collection, id)
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("duplicate id %s", id)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("get document: %w", err)
		}
		return txn.Set(key, data)
	})
}

// All decodes every document of a collection into out.
func (s *BadgerStore) All(ctx context.Context, collection string, out any) error {
	var buf bytes.Buffer
	buf.WriteByte('[')

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := collectionPrefix(collection)
		first := true
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := it.Item().Value(func(val []byte) error {
				buf.Write(val)
				return nil
			}); err != nil {
				return fmt.Errorf("read document: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	buf.WriteByte(']')
	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return fmt.Errorf("unmarshal documents: %w", err)
	}
	return nil
}

// Get decodes one document by id.
func (s *BadgerStore) Get(ctx context.Context, collection, id string, out any) error {
	return s.db.View(func(txn *badger.Txn) error {
		return getInto(txn, documentKey(collection, id), out)
	})
}

// FindOne scans the collection for the first document whose field equals value.
func (s *BadgerStore) FindOne(ctx context.Context, collection, field, value string, out any) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := collectionPrefix(collection)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}

			var fields map[string]any
			if err := json.Unmarshal(val, &fields); err != nil {
				return fmt.Errorf("unmarshal document: %w", err)
			}
			if str, ok := fields[field].(string); ok && str == value {
				return json.Unmarshal(val, out)
			}
		}
		return storage.ErrNotFound
	})
}

// Replace overwrites an existing document.
func (s *BadgerStore) Replace(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		key := documentKey(collection, id)
		if _, err := txn.Get(key); err != nil {
			return notFound(err)
		}
		return txn.Set(key, data)
	})
}

// Delete removes a document and decodes its prior state into out.
func (s *BadgerStore) Delete(ctx context.Context, collection, id string, out any) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := documentKey(collection, id)
		if err := getInto(txn, key, out); err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// Push appends elem to an array field. The read-modify-write runs in one
// transaction; a concurrent writer to the same document makes the commit
// fail with badger.ErrConflict instead of silently dropping an element.
func (s *BadgerStore) Push(ctx context.Context, collection, id, field string, elem any) error {
	raw, err := json.Marshal(elem)
	if err != nil {
		return fmt.Errorf("marshal element: %w", err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("unmarshal element: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := documentKey(collection, id)
		var fields map[string]any
		if err := getInto(txn, key, &fields); err != nil {
			return err
		}

		arr, _ := fields[field].([]any)
		fields[field] = append(arr, value)

		data, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("marshal document: %w", err)
		}
		return txn.Set(key, data)
	})
}

func getInto(txn *badger.Txn, key []byte, out any) error {
	item, err := txn.Get(key)
	if err != nil {
		return notFound(err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

func notFound(err error) error {
	if errors.Is(err, badger.ErrKeyNotFound) {
		return storage.ErrNotFound
	}
	return fmt.Errorf("get document: %w", err)
}
