package orderrepo

import (
	"context"
	"errors"

	"ticketing/internal/core/domain/model/order"
	"ticketing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly assembled order to the database.
// Orders are write-once; there is deliberately no update path.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber(), aggregate)
	return nil
}

// GetByOrderNumber retrieves an order by its order number.
func (r *GormOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByInquiryKey retrieves an order by the theater code, confirmation number
// and telephone the customer supplied at purchase time. All three parts must
// match the same row.
func (r *GormOrderRepository) GetByInquiryKey(ctx context.Context, key order.InquiryKey) (*order.Order, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).First(&dto,
		"theater_code = ? AND confirmation_number = ? AND telephone = ?",
		key.TheaterCode(), key.ConfirmationNumber(), key.Telephone()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", key.ConfirmationNumber())
		}
		return nil, err
	}

	return toDomain(dto)
}
