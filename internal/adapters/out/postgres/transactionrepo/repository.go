package transactionrepo

import (
	"context"
	"errors"
	"time"

	"ticketing/internal/core/domain/model/kernel"
	"ticketing/internal/core/domain/model/transaction"
	"ticketing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM.
type GormTransactionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormTransactionRepository creates a new GORM transaction repository.
func NewGormTransactionRepository(db *gorm.DB, tracker aggregateTracker) *GormTransactionRepository {
	return &GormTransactionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new place-order transaction to the database.
func (r *GormTransactionRepository) Add(ctx context.Context, aggregate *transaction.PlaceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update persists the current state of a place-order transaction.
// The whole row is replaced; the action list is rewritten as one document.
func (r *GormTransactionRepository) Update(ctx context.Context, aggregate *transaction.PlaceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a place-order transaction by its unique identifier.
func (r *GormTransactionRepository) Get(ctx context.Context, id kernel.UUID) (*transaction.PlaceOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PlaceOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transaction", id)
		}
		return nil, err
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return aggregate, nil
}

// GetAllExpired retrieves every in-progress transaction whose confirmation
// deadline passed before the given instant.
func (r *GormTransactionRepository) GetAllExpired(ctx context.Context, now time.Time) ([]*transaction.PlaceOrder, error) {
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}

	var dtos []PlaceOrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND expires < ?", int(transaction.InProgress), now).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]*transaction.PlaceOrder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}

		r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}
