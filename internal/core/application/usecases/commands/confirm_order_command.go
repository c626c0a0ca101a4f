package commands

import (
	"errors"
	"time"

	"ticketing/internal/core/domain/model/kernel"
	"ticketing/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
	ErrOrderDateIsRequired = errors.New("order date is required")
)

// ConfirmOrderCommand represents a request to confirm a place-order
// transaction and assemble the resulting order.
//
// Example:
//
//	cmd, err := NewConfirmOrderCommand(transactionID, time.Now(), false)
//	if err != nil {
//	    return fmt.Errorf("invalid confirmation data: %w", err)
//	}
//
//	handler := NewConfirmOrderCommandHandler(uowFactory)
//	confirmedOrder, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to confirm order: %w", err)
//	}
//	fmt.Printf("Order %s confirmed", confirmedOrder.OrderNumber())
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	transactionID kernel.UUID
	orderDate     time.Time
	isGift        bool

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm a place-order
// transaction. Validates that the transaction ID is valid and the order date
// is set. Returns an error if any validation fails.
func NewConfirmOrderCommand(transactionID kernel.UUID, orderDate time.Time, isGift bool) (ConfirmOrderCommand, error) {
	confirmCommand := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setTransactionID(transactionID),
		confirmCommand.setOrderDate(orderDate),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	confirmCommand.isGift = isGift
	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmOrderCommandIsNotConstructed if validation fails.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// TransactionID returns the identifier of the transaction to confirm.
func (c ConfirmOrderCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

// OrderDate returns the instant the order is considered placed.
func (c ConfirmOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// IsGift reports whether the order should be marked as a gift.
func (c ConfirmOrderCommand) IsGift() bool {
	return c.isGift
}

func (c *ConfirmOrderCommand) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}

	c.transactionID = transactionID
	return nil
}

func (c *ConfirmOrderCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return ErrOrderDateIsRequired
	}

	c.orderDate = orderDate
	return nil
}
