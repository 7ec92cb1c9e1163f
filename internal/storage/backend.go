// Package storage provides abstractions for persistent document storage.
//
// A Backend is a schema-less document database addressed by collection name
// and document identifier. Collection gives a typed view over one collection
// of a Backend, and Store bundles the collections the API uses.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned by a Backend when no document matches.
var ErrNotFound = errors.New("document not found")

// Backend defines the document operations every storage engine implements.
// This abstraction allows swapping SQLite, Badger and MongoDB without changing
// the service layer.
//
// Documents are passed as pointers to structs whose json and bson field names
// agree. out arguments are pointers to the destination (a struct for single
// documents, a slice for All).
type Backend interface {
	// Insert stores doc under id. The document must already carry id in its _id field.
	Insert(ctx context.Context, collection, id string, doc any) error

	// All decodes every document of the collection into out, in identifier order.
	All(ctx context.Context, collection string, out any) error

	// Get decodes the document with the given id into out.
	// Returns ErrNotFound if absent.
	Get(ctx context.Context, collection, id string, out any) error

	// FindOne decodes the first document (in identifier order) whose top-level
	// field equals value. Returns ErrNotFound if none matches.
	FindOne(ctx context.Context, collection, field, value string, out any) error

	// Replace overwrites the document with the given id.
	// Returns ErrNotFound if absent.
	Replace(ctx context.Context, collection, id string, doc any) error

	// Delete removes the document and decodes its prior state into out.
	// Returns ErrNotFound if absent.
	Delete(ctx context.Context, collection, id string, out any) error

	// Push atomically appends elem to the array field of the document,
	// creating the array if the field is missing or null.
	// Returns ErrNotFound if the document is absent.
	Push(ctx context.Context, collection, id, field string, elem any) error

	// Close releases any resources held by the backend.
	Close() error
}

// OpError wraps a failed backend call.
type OpError struct {
	Collection string
	Op         string
	Err        error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// NewID returns a new document identifier.
// UUIDv7 strings sort by creation time, so identifier order is insertion order.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
