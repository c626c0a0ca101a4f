package ports

import (
	"context"
	"time"

	"ticketing/internal/core/domain/model/kernel"
	"ticketing/internal/core/domain/model/transaction"
)

// TransactionRepository defines the persistence contract for place-order
// transaction aggregates across their whole lifecycle, from the initial
// in-progress state through confirmation or expiry.
type TransactionRepository interface {
	// Add persists a new place-order transaction.
	Add(ctx context.Context, aggregate *transaction.PlaceOrder) error

	// Update persists changes to an existing transaction: new authorize
	// actions, contact details or a status transition.
	Update(ctx context.Context, aggregate *transaction.PlaceOrder) error

	// Get retrieves a transaction by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transaction.PlaceOrder, error)

	// GetAllExpired retrieves every in-progress transaction whose
	// confirmation deadline passed before the given instant.
	GetAllExpired(ctx context.Context, now time.Time) ([]*transaction.PlaceOrder, error)
}
