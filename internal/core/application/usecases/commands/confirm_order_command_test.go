package commands_test

import (
	"testing"
	"time"

	"ticketing/internal/core/application/usecases/commands"
	"ticketing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		transactionID := kernel.NewUUID()
		orderDate := time.Date(2020, 1, 15, 9, 0, 0, 0, time.UTC)

		cmd, err := commands.NewConfirmOrderCommand(transactionID, orderDate, true)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.TransactionID().IsEqual(transactionID))
		assert.Equal(t, orderDate, cmd.OrderDate())
		assert.True(t, cmd.IsGift())
	})

	t.Run("should fail with invalid transaction id", func(t *testing.T) {
		var transactionID kernel.UUID

		cmd, err := commands.NewConfirmOrderCommand(transactionID, time.Now(), false)

		require.Error(t, err)
		require.Error(t, cmd.Validate())
	})

	t.Run("should fail with zero order date", func(t *testing.T) {
		cmd, err := commands.NewConfirmOrderCommand(kernel.NewUUID(), time.Time{}, false)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrOrderDateIsRequired)
		require.Error(t, cmd.Validate())
	})

	t.Run("should fail validation when not created via constructor", func(t *testing.T) {
		var cmd commands.ConfirmOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrConfirmOrderCommandIsNotConstructed)
	})
}
