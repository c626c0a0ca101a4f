package jobs

import (
	"context"
	"log/slog"
	"time"

	"ticketing/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TransactionExpirationJob manages the scheduled expiry of place-order
// transactions. Runs every minute to sweep in-progress transactions whose
// confirmation deadline has passed.
type TransactionExpirationJob struct {
	handler commands.ExpireTransactionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTransactionExpirationJob creates a new job for expiring overdue
// transactions. Uses ExpireTransactionsCommandHandler to process the sweep
// every minute.
func NewTransactionExpirationJob(
	handler commands.ExpireTransactionsCommandHandler,
	logger *slog.Logger,
) *TransactionExpirationJob {
	return &TransactionExpirationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "transaction_expiration_job"),
	}
}

// Start begins the transaction expiration job to run every minute.
func (j *TransactionExpirationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireTransactionsCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build expiry command", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Transaction expiration job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired overdue transactions", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Transaction expiration job started (running every minute)")
	return nil
}

// Stop stops the transaction expiration job.
func (j *TransactionExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Transaction expiration job stopped")
}
