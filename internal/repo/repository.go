package repo

import (
	"context"

	"github.com/alertwatch/alertwatch/internal/domain"
)

// Port (interface) — swap in any DB adapter later.
//
// Every call commits synchronously and atomically. Concurrent updates to
// the same id are last-writer-wins; callers needing more must add
// optimistic locking at this layer.
type AlertStore interface {
	// Create inserts a new alert armed (active=true) with CreatedAt=now.
	Create(ctx context.Context, email string, threshold float64) (*domain.Alert, error)
	// GetByID returns nil, nil if there is no record with that id.
	GetByID(ctx context.Context, id int64) (*domain.Alert, error)
	// List returns all alerts; a non-nil active filters by that flag.
	List(ctx context.Context, active *bool) ([]*domain.Alert, error)
	// Update applies upd to a and persists the result.
	Update(ctx context.Context, a *domain.Alert, upd domain.Update) (*domain.Alert, error)
	// Delete removes the record. Deleting an already-deleted alert is an error.
	Delete(ctx context.Context, a *domain.Alert) error
}
