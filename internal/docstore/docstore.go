// Package docstore is a minimal document store: named collections of JSON
// documents addressed by an opaque string identifier.
//
// Two implementations are provided. PostgresStore keeps every collection in a
// single JSONB table; MemoryStore keeps them in process memory and is used for
// development and tests.
package docstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/google/uuid"
)

// IDField is the document key holding the identifier.
const IDField = "_id"

var (
	// ErrNotFound is returned when no document matches an identifier.
	ErrNotFound = common.ErrNotFound

	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate document")
)

// Document is a decoded JSON object. Numbers are float64.
type Document map[string]any

// ID returns the document identifier or "" when absent.
func (d Document) ID() string {
	s, _ := d[IDField].(string)
	return s
}

// String returns the string value stored under key.
func (d Document) String(key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}

// Float returns the numeric value stored under key.
func (d Document) Float(key string) (float64, bool) {
	return toFloat(d[key])
}

// Strings returns the string elements of an array value stored under key.
// A single string value is returned as a one-element slice.
func (d Document) Strings(key string) []string {
	switch v := d[key].(type) {
	case string:
		return []string{v}
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Clone returns a deep copy produced by a JSON round trip, so that numeric
// values are normalized the same way a stored document would be.
func (d Document) Clone() (Document, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Collection is the per-collection set of operations the servers rely on.
type Collection interface {
	// FindOne returns the document stored under id or ErrNotFound.
	FindOne(ctx context.Context, id string) (Document, error)
	// Find returns all documents satisfying f, in insertion order.
	Find(ctx context.Context, f Filter) ([]Document, error)
	// InsertOne stores doc and returns its identifier. A string "_id" in doc
	// is used as is; otherwise a new UUID is assigned.
	InsertOne(ctx context.Context, doc Document) (string, error)
	// UpdateOne merges set into the stored document. ErrNotFound when no
	// document has the identifier.
	UpdateOne(ctx context.Context, id string, set Document) error
	// DeleteOne removes the document. ErrNotFound when nothing was deleted.
	DeleteOne(ctx context.Context, id string) error
}

// Store hands out collections by name.
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close() error
}

// NewID returns a fresh document identifier.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id is a syntactically valid document identifier.
func ValidID(id string) bool {
	return uuid.Validate(id) == nil
}

// splitID separates the identifier from the body that gets persisted.
func splitID(doc Document) (string, Document) {
	body := make(Document, len(doc))
	for k, v := range doc {
		body[k] = v
	}
	id, _ := body[IDField].(string)
	delete(body, IDField)
	if id == "" {
		id = NewID()
	}
	return id, body
}
