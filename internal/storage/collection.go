package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mmynk/restapis/internal/metrics"
)

// Collection is a typed view over one collection of a Backend.
//
// Every failure other than ErrNotFound is returned as an *OpError, so callers
// can tell store-layer failures apart from everything else with errors.As.
type Collection[T any] struct {
	backend Backend
	name    string
}

// NewCollection returns a typed view of the named collection.
func NewCollection[T any](backend Backend, name string) *Collection[T] {
	return &Collection[T]{backend: backend, name: name}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Insert stores doc under id.
func (c *Collection[T]) Insert(ctx context.Context, id string, doc *T) error {
	return c.observe("insert", func() error {
		return c.backend.Insert(ctx, c.name, id, doc)
	})
}

// All returns every document; never nil.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	docs := []T{}
	err := c.observe("all", func() error {
		return c.backend.All(ctx, c.name, &docs)
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Get returns the document with the given id, or ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	var doc T
	err := c.observe("get", func() error {
		return c.backend.Get(ctx, c.name, id, &doc)
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindOne returns the first document whose field equals value, or ErrNotFound.
func (c *Collection[T]) FindOne(ctx context.Context, field, value string) (*T, error) {
	var doc T
	err := c.observe("find_one", func() error {
		return c.backend.FindOne(ctx, c.name, field, value, &doc)
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Replace overwrites the document with the given id, or returns ErrNotFound.
func (c *Collection[T]) Replace(ctx context.Context, id string, doc *T) error {
	return c.observe("replace", func() error {
		return c.backend.Replace(ctx, c.name, id, doc)
	})
}

// Delete removes the document and returns its prior state, or ErrNotFound.
func (c *Collection[T]) Delete(ctx context.Context, id string) (*T, error) {
	var doc T
	err := c.observe("delete", func() error {
		return c.backend.Delete(ctx, c.name, id, &doc)
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Push appends elem to the array field of the document, or returns ErrNotFound.
func (c *Collection[T]) Push(ctx context.Context, id, field string, elem any) error {
	return c.observe("push", func() error {
		return c.backend.Push(ctx, c.name, id, field, elem)
	})
}

func (c *Collection[T]) observe(op string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.StoreOperationDuration.WithLabelValues(c.name, op).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.StoreOperations.WithLabelValues(c.name, op, "ok").Inc()
		return nil
	case errors.Is(err, ErrNotFound):
		metrics.StoreOperations.WithLabelValues(c.name, op, "not_found").Inc()
		return ErrNotFound
	default:
		metrics.StoreOperations.WithLabelValues(c.name, op, "error").Inc()
		return &OpError{Collection: c.name, Op: op, Err: err}
	}
}
