package services_test

import (
	"testing"
	"time"

	"ticketing/internal/core/domain/model/kernel"
	"ticketing/internal/core/domain/model/order"
	"ticketing/internal/core/domain/model/transaction"
	"ticketing/internal/core/domain/services"
	"ticketing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderDate = time.Date(2020, 1, 15, 9, 0, 0, 0, time.UTC)

func newSeatReservation(t *testing.T, prices ...int) transaction.SeatReservationAuthorization {
	t.Helper()

	offers := make([]transaction.SeatOffer, 0, len(prices))
	seats := make([]transaction.ReservedSeat, 0, len(prices))
	total := 0
	for i, price := range prices {
		number := string(rune('A'+i)) + "-1"
		offers = append(offers, transaction.SeatOffer{
			SeatSection: "Default",
			SeatNumber:  number,
			TicketName:  kernel.NewMultilingualString("一般", "Adult"),
			Price:       price,
		})
		seats = append(seats, transaction.ReservedSeat{Section: "Default", Number: number})
		total += price
	}

	return transaction.NewSeatReservationAuthorization(
		transaction.ActionStatusCompleted,
		transaction.SeatReservationObject{
			Event: transaction.ScreeningEvent{
				Identifier: "20200115-001-sample",
				Name:       kernel.NewMultilingualString("サンプル上映", "Sample Screening"),
				Venue: transaction.Venue{
					TypeOf: "MovieTheater",
					Name:   kernel.NewMultilingualString("シネマサンシャイン", "Cinema Sunshine"),
				},
			},
			Offers: offers,
		},
		&transaction.SeatReservationResult{
			Price:              total,
			TheaterCode:        "001",
			ConfirmationNumber: "12345",
			Seats:              seats,
		},
	)
}

func newTransaction(t *testing.T, actions ...transaction.AuthorizeAction) *transaction.PlaceOrder {
	t.Helper()

	name, err := kernel.NewPersonName("山田", "太郎")
	require.NoError(t, err)
	contact, err := transaction.NewCustomerContact(name, "090-0000-0000", "taro@example.com")
	require.NoError(t, err)

	tx, err := transaction.NewPlaceOrder(
		kernel.NewUUID(),
		transaction.Agent{ID: "agent-1", TypeOf: "Person"},
		transaction.Seller{TypeOf: "MovieTheater", ID: "seller-1", Name: "シネマサンシャイン", URL: "https://example.com"},
		orderDate.Add(15*time.Minute),
	)
	require.NoError(t, err)
	require.NoError(t, tx.SetCustomerContact(contact))

	for _, action := range actions {
		tx.AddAuthorizeAction(action)
	}
	return tx
}

func TestOrderAssembler_Assemble(t *testing.T) {
	assembler := services.NewOrderAssembler()

	t.Run("should assemble order from seat reservation and credit card", func(t *testing.T) {
		tx := newTransaction(t,
			newSeatReservation(t, 2000),
			transaction.NewCreditCardAuthorization(
				transaction.ActionStatusCompleted,
				transaction.CreditCardObject{GatewayOrderID: "gmo-777", Amount: 2000},
				&transaction.CreditCardResult{Price: 2000, GatewayOrderID: "gmo-777"},
			),
		)

		result, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.NoError(t, err)
		assert.Equal(t, 2000, result.Price())
		assert.Equal(t, kernel.JPY, result.PriceCurrency())
		assert.Equal(t, "2020-01-15-001-12345", result.OrderNumber())
		assert.Equal(t, "12345", result.ConfirmationNumber())
		assert.Equal(t, "/inquiry/login?theater=001&reserve=12345", result.URL())
		assert.Empty(t, result.Discounts())

		require.Len(t, result.PaymentMethods(), 1)
		payment := result.PaymentMethods()[0]
		assert.Equal(t, "クレジットカード", payment.Name())
		assert.Equal(t, "CreditCard", payment.Method())
		assert.Equal(t, "gmo-777", payment.MethodID())

		key := result.InquiryKey()
		assert.Equal(t, "001", key.TheaterCode())
		assert.Equal(t, "12345", key.ConfirmationNumber())
		assert.Equal(t, "090-0000-0000", key.Telephone())
	})

	t.Run("should reduce price by aggregated voucher discounts", func(t *testing.T) {
		tx := newTransaction(t,
			newSeatReservation(t, 2000),
			transaction.NewVoucherAuthorization(
				transaction.ActionStatusCompleted,
				transaction.VoucherObject{VoucherCodes: []string{"3472695908", "3472695909"}},
				&transaction.VoucherResult{Price: 500},
			),
		)

		result, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.NoError(t, err)
		assert.Equal(t, 1500, result.Price())

		require.Len(t, result.Discounts(), 1)
		discount := result.Discounts()[0]
		assert.Equal(t, "ムビチケカード", discount.Name())
		assert.Equal(t, 500, discount.Amount())
		assert.Equal(t, "3472695908,3472695909", discount.Code())
		assert.Equal(t, kernel.JPY, discount.Currency())
	})

	t.Run("should allow negative net price when discounts exceed reservation total", func(t *testing.T) {
		tx := newTransaction(t,
			newSeatReservation(t, 1000),
			transaction.NewVoucherAuthorization(
				transaction.ActionStatusCompleted,
				transaction.VoucherObject{VoucherCodes: []string{"3472695908"}},
				&transaction.VoucherResult{Price: 1500},
			),
		)

		result, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.NoError(t, err)
		assert.Equal(t, -500, result.Price())
	})

	t.Run("should build one confirmed offer per reserved seat", func(t *testing.T) {
		tx := newTransaction(t, newSeatReservation(t, 1800, 1800, 1000))

		result, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.NoError(t, err)
		assert.Equal(t, 4600, result.Price())

		offers := result.AcceptedOffers()
		require.Len(t, offers, 3)
		for _, offer := range offers {
			item := offer.ItemOffered
			assert.Equal(t, order.ReservationConfirmed, item.ReservationStatus)
			assert.Equal(t, "12345", item.ReservationNumber)
			assert.Equal(t, "山田 太郎", item.UnderName.Name.Ja)
			assert.Equal(t, "山田 太郎", item.ReservedTicket.UnderName.Name.En)
			assert.Equal(t, "20200115-001-sample", item.ReservationFor.Identifier)
			assert.Equal(t, item.ReservedTicket.Price, offer.Price)
			assert.Equal(t, "MovieTheater", offer.Seller.TypeOf)
			assert.Equal(t, "シネマサンシャイン", offer.Seller.Name)
		}
		assert.Equal(t, "A-1", offers[0].ItemOffered.ReservedTicket.SeatNumber)
		assert.Equal(t, "C-1", offers[2].ItemOffered.ReservedTicket.SeatNumber)
	})

	t.Run("should ignore non-completed actions", func(t *testing.T) {
		tx := newTransaction(t,
			newSeatReservation(t, 2000),
			transaction.NewVoucherAuthorization(
				transaction.ActionStatusCanceled,
				transaction.VoucherObject{VoucherCodes: []string{"3472695908"}},
				&transaction.VoucherResult{Price: 500},
			),
			transaction.NewCreditCardAuthorization(
				transaction.ActionStatusFailed,
				transaction.CreditCardObject{GatewayOrderID: "gmo-111", Amount: 2000},
				nil,
			),
		)

		result, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.NoError(t, err)
		assert.Equal(t, 2000, result.Price())
		assert.Empty(t, result.Discounts())
		assert.Empty(t, result.PaymentMethods())
	})

	t.Run("should copy agent membership onto the customer", func(t *testing.T) {
		tx := newTransaction(t, newSeatReservation(t, 2000))
		withMembership, err := transaction.RestorePlaceOrder(
			tx.ID(), tx.Status(),
			transaction.Agent{
				ID:     "agent-1",
				TypeOf: "Person",
				MemberOf: &transaction.ProgramMembership{
					TypeOf:           "ProgramMembership",
					ProgramName:      "ポイントプログラム",
					MembershipNumber: "M-0001",
				},
			},
			tx.Seller(), tx.CustomerContact(), tx.AuthorizeActions(), tx.Expires(),
		)
		require.NoError(t, err)

		result, err := assembler.Assemble(withMembership, orderDate, order.OrderDelivered, false)

		require.NoError(t, err)
		customer := result.Customer()
		assert.Equal(t, "山田 太郎", customer.Name)
		assert.Equal(t, "山田", customer.FamilyName)
		assert.Equal(t, "太郎", customer.GivenName)
		require.NotNil(t, customer.MemberOf)
		assert.Equal(t, "M-0001", customer.MemberOf.MembershipNumber)
	})

	t.Run("should be idempotent over the same inputs", func(t *testing.T) {
		tx := newTransaction(t,
			newSeatReservation(t, 2000),
			transaction.NewVoucherAuthorization(
				transaction.ActionStatusCompleted,
				transaction.VoucherObject{VoucherCodes: []string{"3472695908"}},
				&transaction.VoucherResult{Price: 500},
			),
		)

		first, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)
		require.NoError(t, err)
		second, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.Equal(t, first.Price(), second.Price())
		assert.Equal(t, first.AcceptedOffers(), second.AcceptedOffers())
		assert.Equal(t, first.Discounts(), second.Discounts())
	})

	t.Run("should fail when no completed seat reservation exists", func(t *testing.T) {
		tx := newTransaction(t,
			transaction.NewCreditCardAuthorization(
				transaction.ActionStatusCompleted,
				transaction.CreditCardObject{GatewayOrderID: "gmo-777", Amount: 2000},
				&transaction.CreditCardResult{Price: 2000, GatewayOrderID: "gmo-777"},
			),
		)

		result, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrMissingRequiredData)
		assert.Contains(t, err.Error(), "seat reservation does not exist")
	})

	t.Run("should fail when the only seat reservation is not completed", func(t *testing.T) {
		active := newSeatReservation(t, 2000)
		tx := newTransaction(t,
			transaction.NewSeatReservationAuthorization(
				transaction.ActionStatusActive, active.Object(), active.Result()),
		)

		_, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrMissingRequiredData)
	})

	t.Run("should fail with multiple completed seat reservations", func(t *testing.T) {
		tx := newTransaction(t, newSeatReservation(t, 2000), newSeatReservation(t, 1000))

		result, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrUnsupportedOperation)
		assert.Contains(t, err.Error(), "number of seat reservation authorizations must be 1")
	})

	t.Run("should fail when seat reservation carries no result", func(t *testing.T) {
		complete := newSeatReservation(t, 2000)
		tx := newTransaction(t,
			transaction.NewSeatReservationAuthorization(
				transaction.ActionStatusCompleted, complete.Object(), nil),
		)

		result, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrMissingRequiredData)
		assert.Contains(t, err.Error(), "seat reservation result does not exist")
	})

	t.Run("should fail when customer contact is missing", func(t *testing.T) {
		tx, err := transaction.NewPlaceOrder(
			kernel.NewUUID(),
			transaction.Agent{ID: "agent-1", TypeOf: "Person"},
			transaction.Seller{TypeOf: "MovieTheater", ID: "seller-1", Name: "シネマサンシャイン"},
			orderDate.Add(15*time.Minute),
		)
		require.NoError(t, err)
		tx.AddAuthorizeAction(newSeatReservation(t, 2000))

		result, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrMissingRequiredData)
		assert.Contains(t, err.Error(), "customer contact does not exist")
	})

	t.Run("should fail for transaction not created via constructor", func(t *testing.T) {
		var tx *transaction.PlaceOrder

		result, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, transaction.ErrPlaceOrderIsNotConstructed, err)
	})

	t.Run("should skip voucher and card authorizations without results", func(t *testing.T) {
		tx := newTransaction(t,
			newSeatReservation(t, 2000),
			transaction.NewVoucherAuthorization(
				transaction.ActionStatusCompleted,
				transaction.VoucherObject{VoucherCodes: []string{"3472695908"}},
				nil,
			),
			transaction.NewCreditCardAuthorization(
				transaction.ActionStatusCompleted,
				transaction.CreditCardObject{GatewayOrderID: "gmo-777", Amount: 2000},
				nil,
			),
		)

		result, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.NoError(t, err)
		assert.Equal(t, 2000, result.Price())
		assert.Empty(t, result.Discounts())
		assert.Empty(t, result.PaymentMethods())
	})

	t.Run("should not contribute award authorizations to price or payments", func(t *testing.T) {
		tx := newTransaction(t,
			newSeatReservation(t, 2000),
			transaction.NewAwardAuthorization(
				transaction.ActionStatusCompleted,
				transaction.AwardObject{Points: 100},
				&transaction.AwardResult{Price: 0, Points: 100},
			),
		)

		result, err := assembler.Assemble(tx, orderDate, order.OrderDelivered, false)

		require.NoError(t, err)
		assert.Equal(t, 2000, result.Price())
		assert.Empty(t, result.PaymentMethods())
		assert.Empty(t, result.Discounts())
	})
}
