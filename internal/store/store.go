// Package store persists the weekend document as a single JSON blob under one
// fixed key. Two backends exist: Redis for deployments and an in-process
// memory store for local development and tests.
//
// The contract is deliberately minimal — Load and Save with no versioning and
// no compare-and-swap. Every mutation in the service layer is a
// read-modify-write against this interface, so two concurrent writers can
// lose one of the two updates (last write wins). This interface is also the
// seam where a CAS-capable implementation (Redis WATCH/MULTI) could be
// substituted without changing any caller.
package store

import (
	"context"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

// Key is the fixed name the document is stored under.
const Key = "weekend-data"

// Store defines the persistence operations for the weekend document.
type Store interface {
	// Load returns the current document. A store that has never been
	// written returns an empty document with all six collections allocated.
	Load(ctx context.Context) (domain.WeekendData, error)

	// Save replaces the whole document.
	Save(ctx context.Context, data domain.WeekendData) error

	// Close releases any resources held by the store.
	Close() error
}
