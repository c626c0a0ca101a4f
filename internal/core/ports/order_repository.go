package ports

import (
	"context"

	"ticketing/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are written once at transaction confirmation and retrieved by the
// customer through the inquiry key; they are never updated afterward.
type OrderRepository interface {
	// Add persists a newly assembled order.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetByOrderNumber retrieves an order by its order number.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	// GetByInquiryKey retrieves an order by the theater code, confirmation
	// number and telephone the customer supplied at purchase time.
	GetByInquiryKey(ctx context.Context, key order.InquiryKey) (*order.Order, error)
}
