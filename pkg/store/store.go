// Package store provides persistence for named chart layouts.
//
// Server deployments let clients save a spec together with its computed
// layout under a name, then retrieve or recompute it later. Backends:
//   - MemoryStore: in-memory storage for development and testing
//   - MongoStore: MongoDB-backed storage for production deployments
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/layout"
)

// Document is a saved chart layout with its source spec.
type Document struct {
	ID        uuid.UUID      `json:"id" bson:"_id"`
	Name      string         `json:"name" bson:"name"`
	Spec      string         `json:"spec" bson:"spec"`
	Layout    *layout.Layout `json:"layout" bson:"layout"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for layout persistence backends.
type Store interface {
	// Get retrieves a document by ID.
	// Returns an error with code ErrCodeLayoutNotFound if no document exists.
	Get(ctx context.Context, id uuid.UUID) (*Document, error)

	// List returns all documents, newest first.
	List(ctx context.Context) ([]*Document, error)

	// Put stores a document. A zero ID is assigned a new one.
	// The document's timestamps are updated in place.
	Put(ctx context.Context, doc *Document) error

	// Delete removes a document by ID.
	// Returns an error with code ErrCodeLayoutNotFound if no document exists.
	Delete(ctx context.Context, id uuid.UUID) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NewDocument creates a document with a fresh ID and timestamps.
func NewDocument(name, spec string, l *layout.Layout) *Document {
	now := time.Now().UTC()
	return &Document{
		ID:        uuid.New(),
		Name:      name,
		Spec:      spec,
		Layout:    l,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// notFound builds the standard missing-document error.
func notFound(id uuid.UUID) error {
	return errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", id)
}
