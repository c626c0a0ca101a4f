package commands

import (
	"errors"
	"time"

	"ticketing/internal/pkg/guard"
)

var (
	ErrExpireTransactionsCommandIsNotConstructed = errors.New(
		"ExpireTransactionsCommand must be created via NewExpireTransactionsCommand constructor",
	)
	ErrNowIsRequired = errors.New("current time is required")
)

// ExpireTransactionsCommand represents a request to expire every in-progress
// place-order transaction whose confirmation deadline has passed.
// Issued periodically by the background job manager.
type ExpireTransactionsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireTransactionsCommand creates a command to expire overdue
// transactions as of the given instant.
func NewExpireTransactionsCommand(now time.Time) (ExpireTransactionsCommand, error) {
	expireCommand := ExpireTransactionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if now.IsZero() {
		return ExpireTransactionsCommand{}, ErrNowIsRequired
	}

	expireCommand.now = now
	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireTransactionsCommandIsNotConstructed if validation fails.
func (c ExpireTransactionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireTransactionsCommandIsNotConstructed)
}

// Now returns the instant overdue transactions are measured against.
func (c ExpireTransactionsCommand) Now() time.Time {
	return c.now
}
