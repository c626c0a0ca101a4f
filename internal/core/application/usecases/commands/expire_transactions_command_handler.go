package commands

import (
	"context"
)

// ExpireTransactionsCommandHandler expires overdue place-order transactions.
// Customers abandon purchase flows routinely; expiry releases those
// transactions so their seat holds can be voided downstream.
//
// Example:
//
//	handler := NewExpireTransactionsCommandHandler(uowFactory)
//	cmd, _ := NewExpireTransactionsCommand(time.Now())
//	expired, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Expiry sweep failed: %v", err)
//	    return
//	}
//	log.Printf("Expired %d transactions", expired)
type ExpireTransactionsCommandHandler struct {
	uowFactory TransactionUoWFactory
}

// NewExpireTransactionsCommandHandler creates a handler for the expiry sweep.
// Requires a TransactionUoWFactory for transactional persistence.
func NewExpireTransactionsCommandHandler(uowFactory TransactionUoWFactory) ExpireTransactionsCommandHandler {
	return ExpireTransactionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires every in-progress transaction past its deadline and returns
// how many were transitioned. All transitions land in one database
// transaction; a single failure rolls back the whole sweep.
func (h ExpireTransactionsCommandHandler) Handle(ctx context.Context, command ExpireTransactionsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	transactionRepo := uow.TransactionRepository()

	overdue, err := transactionRepo.GetAllExpired(ctx, command.Now())
	if err != nil {
		return 0, err
	}

	for _, placeOrder := range overdue {
		if err = placeOrder.Expire(); err != nil {
			return 0, err
		}

		if err = transactionRepo.Update(ctx, placeOrder); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(overdue), nil
}
