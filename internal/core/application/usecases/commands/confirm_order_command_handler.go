package commands

import (
	"context"
	"errors"

	"ticketing/internal/core/domain/model/order"
	"ticketing/internal/core/domain/services"
	"ticketing/internal/pkg/errs"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// ConfirmOrderCommandHandler orchestrates the confirmation of a place-order
// transaction: it loads the aggregate, assembles the order from its completed
// authorize actions, transitions the transaction to Confirmed and persists
// both within a single database transaction.
//
// Example:
//
//	handler := NewConfirmOrderCommandHandler(uowFactory)
//	cmd, _ := NewConfirmOrderCommand(transactionID, time.Now(), false)
//	confirmedOrder, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrTransactionNotFound):
//	    log.Println("Unknown transaction")
//	case err != nil:
//	    log.Printf("Confirmation failed: %v", err)
//	default:
//	    log.Printf("Order %s assembled", confirmedOrder.OrderNumber())
//	}
type ConfirmOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
// Requires a UoWFactory for coordinating transactional updates across
// repositories.
func NewConfirmOrderCommandHandler(uowFactory UoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command and returns the assembled order.
// The order write and the transaction status transition either both land or
// both roll back. Returns ErrTransactionNotFound for an unknown transaction
// ID; assembly errors from the domain service pass through unchanged.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, command ConfirmOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	transactionRepo := uow.TransactionRepository()
	orderRepo := uow.OrderRepository()

	placeOrder, err := transactionRepo.Get(ctx, command.TransactionID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}

	assembled, err := services.NewOrderAssembler().Assemble(
		placeOrder, command.OrderDate(), order.OrderDelivered, command.IsGift())
	if err != nil {
		return nil, err
	}

	if err = placeOrder.Confirm(); err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, assembled); err != nil {
		return nil, err
	}

	if err = transactionRepo.Update(ctx, placeOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assembled, nil
}
