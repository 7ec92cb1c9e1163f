// Package sqlite provides a SQLite-backed implementation of storage.Backend.
// Documents are kept as JSON text, one row per document.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/restapis/internal/storage"
)

// Ensure SQLiteStore implements storage.Backend
var _ storage.Backend = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Backend using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
// The special path ":memory:" opens a private in-memory database.
func New(dbPath string) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection serializes writers and keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Insert stores a new document.
func (s *SQLiteStore) Insert(ctx context.Context, collection, id string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO documents (collection, id, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		collection, id, string(body), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// All decodes every document of a collection into out, which must point to a slice.
func (s *SQLiteStore) All(ctx context.Context, collection string, out any) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT body FROM documents WHERE collection = ? ORDER BY id",
		collection,
	)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var bodies []string
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return fmt.Errorf("failed to scan document: %w", err)
		}
		bodies = append(bodies, body)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate documents: %w", err)
	}

	array := "[" + strings.Join(bodies, ",") + "]"
	if err := json.Unmarshal([]byte(array), out); err != nil {
		return fmt.Errorf("failed to decode documents: %w", err)
	}
	return nil
}

// Get decodes one document by id.
func (s *SQLiteStore) Get(ctx context.Context, collection, id string, out any) error {
	row := s.db.QueryRowContext(ctx,
		"SELECT body FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	)
	return scanDocument(row, out)
}

// FindOne decodes the first document whose top-level field equals value.
func (s *SQLiteStore) FindOne(ctx context.Context, collection, field, value string, out any) error {
	row := s.db.QueryRowContext(ctx,
		"SELECT body FROM documents WHERE collection = ? AND json_extract(body, ?) = ? ORDER BY id LIMIT 1",
		collection, jsonPath(field), value,
	)
	return scanDocument(row, out)
}

// Replace overwrites an existing document.
func (s *SQLiteStore) Replace(ctx context.Context, collection, id string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE documents SET body = ?, updated_at = ? WHERE collection = ? AND id = ?",
		string(body), time.Now().Unix(), collection, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	return requireAffected(result)
}

// Delete removes a document and decodes the removed body into out.
func (s *SQLiteStore) Delete(ctx context.Context, collection, id string, out any) error {
	row := s.db.QueryRowContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND id = ? RETURNING body",
		collection, id,
	)
	return scanDocument(row, out)
}

// Push appends elem to an array field with a single UPDATE statement, so
// concurrent pushes to the same document never lose each other's elements.
func (s *SQLiteStore) Push(ctx context.Context, collection, id, field string, elem any) error {
	value, err := json.Marshal(elem)
	if err != nil {
		return fmt.Errorf("failed to encode element: %w", err)
	}

	path := jsonPath(field)
	result, err := s.db.ExecContext(ctx, `
		UPDATE documents
		SET body = json_set(body, ?, json_insert(COALESCE(json_extract(body, ?), '[]'), '$[#]', json(?))),
		    updated_at = ?
		WHERE collection = ? AND id = ?
	`, path, path, string(value), time.Now().Unix(), collection, id)
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", field, err)
	}
	return requireAffected(result)
}

func scanDocument(row *sql.Row, out any) error {
	var body string
	err := row.Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// jsonPath turns a top-level field name into a JSON1 path.
func jsonPath(field string) string {
	return "$." + field
}
