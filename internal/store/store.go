// Package store persists records keyed by id and scoped by owner. Two
// implementations exist: Postgres (pgx) for real deployments and an
// in-memory store for development and tests. Both enforce the same
// conditional-replace contract.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ArinDixit06/prod-app/internal/domain"
)

var (
	// ErrNotFound is returned when no record exists under the given id.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned by Replace when the stored record's updatedAt
	// no longer matches the caller's expected value. The caller observed a
	// stale version and must re-read before writing again.
	ErrConflict = errors.New("record was modified concurrently")
	// ErrEmailTaken is returned when registering an email that already has
	// an account.
	ErrEmailTaken = errors.New("email already registered")
)

// Store is the per-kind record store. Replace is a full-document overwrite
// conditional on the stored record still carrying expectedUpdatedAt; a
// mismatch yields ErrConflict so concurrent edits surface instead of being
// silently overwritten.
type Store[T domain.Entity] interface {
	Get(ctx context.Context, id string) (T, error)
	ListByOwner(ctx context.Context, userID string) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Replace(ctx context.Context, item T, expectedUpdatedAt time.Time) (T, error)
	Delete(ctx context.Context, id string) error
}

// UserStore persists accounts. Email is unique.
type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

// Stores bundles the per-kind stores behind one handle, wrkq-style.
type Stores struct {
	Users    UserStore
	Tasks    Store[*domain.Task]
	Notes    Store[*domain.Note]
	Calendar Store[*domain.CalendarEntry]
}

// prepareCreate assigns an id when the record carries none and stamps the
// clocks. A client-supplied id is preserved: offline-created records arrive
// through sync already carrying the identity the client filed them under,
// and re-creating them under a fresh id would break sync retriability.
// Client-supplied timestamps are likewise preserved; only missing ones get
// the current time.
func prepareCreate(e domain.Entity, now time.Time) {
	if e.GetID() == "" {
		e.SetID(uuid.NewString())
	}
	if e.GetCreatedAt().IsZero() {
		e.SetCreatedAt(now)
	}
	if e.GetUpdatedAt().IsZero() {
		e.SetUpdatedAt(now)
	}
}
