package services

import (
	"fmt"
	"strings"
	"time"

	"ticketing/internal/core/domain/model/kernel"
	"ticketing/internal/core/domain/model/order"
	"ticketing/internal/core/domain/model/transaction"
	"ticketing/internal/pkg/errs"
)

// Display names stamped onto order line items. The reservation and payment
// systems are Japanese-market services, so the customer-facing labels are
// fixed Japanese strings.
const (
	voucherDiscountName   = "ムビチケカード"
	creditCardPaymentName = "クレジットカード"
	creditCardMethod      = "CreditCard"
)

// OrderAssembler is the domain service that transforms a completed place-order
// transaction into an immutable Order.
//
// Key responsibilities:
//   - Classifying the transaction's authorize actions by purpose
//   - Aggregating voucher redemptions into discounts and card authorizations
//     into payment methods
//   - Building one accepted offer per reserved seat
//   - Deriving the order number and the customer-facing inquiry URL
//
// Business rules:
//   - Exactly one completed seat-reservation authorization must be present
//   - The seat reservation must carry a result and the transaction a customer
//     contact
//   - The net price is the reservation's gross total minus all discounts
//   - Assembly never mutates the transaction; running it twice over the same
//     inputs yields equal orders
type OrderAssembler struct{}

// NewOrderAssembler creates a new OrderAssembler instance.
func NewOrderAssembler() OrderAssembler {
	return OrderAssembler{}
}

// Assemble builds the Order for a place-order transaction.
//
// Parameters:
//   - tx: the transaction to assemble from (treated as an immutable snapshot)
//   - orderDate: the instant the order is considered placed
//   - orderStatus: the delivery status to stamp onto the order
//   - isGift: whether the order is marked as a gift
//
// Returns errs.ErrMissingRequiredData when the transaction lacks a completed
// seat reservation, a reservation result or a customer contact, and
// errs.ErrUnsupportedOperation when it carries more than one completed seat
// reservation.
func (a OrderAssembler) Assemble(
	tx *transaction.PlaceOrder,
	orderDate time.Time,
	orderStatus order.Status,
	isGift bool,
) (*order.Order, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	completed := tx.PartitionCompletedActions()

	if len(completed.SeatReservations) == 0 {
		return nil, errs.NewMissingRequiredDataError(
			"transaction.authorizeActions", "seat reservation does not exist")
	}
	if len(completed.SeatReservations) > 1 {
		return nil, errs.NewUnsupportedOperationError(
			"number of seat reservation authorizations must be 1")
	}

	reservation := completed.SeatReservations[0]
	result := reservation.Result()
	if result == nil {
		return nil, errs.NewMissingRequiredDataError(
			"seatReservation.result", "seat reservation result does not exist")
	}

	contact := tx.CustomerContact()
	if contact == nil {
		return nil, errs.NewMissingRequiredDataError(
			"transaction.customerContact", "customer contact does not exist")
	}

	inquiryKey, err := order.NewInquiryKey(
		result.TheaterCode, result.ConfirmationNumber, contact.Telephone())
	if err != nil {
		return nil, err
	}

	discounts := aggregateDiscounts(completed.Vouchers)
	price := result.Price
	for _, d := range discounts {
		price -= d.Amount()
	}

	return order.NewOrder(order.Params{
		Seller:             assembleSeller(tx.Seller()),
		Customer:           assembleCustomer(tx.Agent(), *contact),
		Price:              price,
		PriceCurrency:      kernel.JPY,
		PaymentMethods:     aggregatePaymentMethods(completed.CreditCards),
		Discounts:          discounts,
		ConfirmationNumber: result.ConfirmationNumber,
		OrderNumber: fmt.Sprintf("%s-%s-%s",
			orderDate.Format("2006-01-02"), result.TheaterCode, result.ConfirmationNumber),
		AcceptedOffers: buildAcceptedOffers(reservation, *contact),
		URL: fmt.Sprintf("/inquiry/login?theater=%s&reserve=%s",
			result.TheaterCode, result.ConfirmationNumber),
		Status:     orderStatus,
		OrderDate:  orderDate,
		IsGift:     isGift,
		InquiryKey: inquiryKey,
	})
}

// aggregateDiscounts maps every completed voucher authorization to one
// discount line. A single authorization that redeemed several voucher cards
// becomes one discount whose code joins the card codes with commas.
// Authorizations without a result are skipped.
func aggregateDiscounts(vouchers []transaction.VoucherAuthorization) []order.Discount {
	discounts := make([]order.Discount, 0, len(vouchers))
	for _, v := range vouchers {
		result := v.Result()
		if result == nil {
			continue
		}

		discounts = append(discounts, order.NewDiscount(
			voucherDiscountName,
			result.Price,
			strings.Join(v.Object().VoucherCodes, ","),
			kernel.JPY,
		))
	}
	return discounts
}

// aggregatePaymentMethods maps every completed card authorization to one
// payment method line carrying the gateway's order identifier.
// Authorizations without a result are skipped.
func aggregatePaymentMethods(creditCards []transaction.CreditCardAuthorization) []order.PaymentMethod {
	methods := make([]order.PaymentMethod, 0, len(creditCards))
	for _, c := range creditCards {
		result := c.Result()
		if result == nil {
			continue
		}

		methods = append(methods, order.NewPaymentMethod(
			creditCardPaymentName,
			creditCardMethod,
			result.GatewayOrderID,
		))
	}
	return methods
}

// assembleCustomer merges the transaction agent's identity with the contact
// details supplied during the transaction. The membership reference is copied
// over only when the agent carries one.
func assembleCustomer(agent transaction.Agent, contact transaction.CustomerContact) order.Customer {
	customer := order.Customer{
		ID:         agent.ID,
		TypeOf:     agent.TypeOf,
		Name:       contact.Name().DisplayName(),
		Email:      contact.Email(),
		Telephone:  contact.Telephone(),
		FamilyName: contact.Name().FamilyName(),
		GivenName:  contact.Name().GivenName(),
	}

	if agent.MemberOf != nil {
		customer.MemberOf = &order.ProgramMembership{
			TypeOf:           agent.MemberOf.TypeOf,
			ProgramName:      agent.MemberOf.ProgramName,
			MembershipNumber: agent.MemberOf.MembershipNumber,
		}
	}

	return customer
}

func assembleSeller(seller transaction.Seller) order.Seller {
	return order.Seller{
		TypeOf: seller.TypeOf,
		ID:     seller.ID,
		Name:   seller.Name,
		URL:    seller.URL,
	}
}

// buildAcceptedOffers builds one accepted offer per requested seat offer, each
// wrapping a freshly stamped confirmed reservation. The customer's display
// name is recorded as the holder of both the reservation and its ticket, and
// the screening's venue is named as the offer seller.
func buildAcceptedOffers(
	reservation transaction.SeatReservationAuthorization,
	contact transaction.CustomerContact,
) []order.AcceptedOffer {
	object := reservation.Object()
	result := reservation.Result()
	underName := order.ReservationHolder{
		TypeOf: "Person",
		Name:   kernel.NewUniformMultilingualString(contact.Name().DisplayName()),
	}

	offers := make([]order.AcceptedOffer, 0, len(object.Offers))
	for _, seatOffer := range object.Offers {
		itemOffered := order.EventReservation{
			TypeOf:            "EventReservation",
			ReservationNumber: result.ConfirmationNumber,
			ReservationStatus: order.ReservationConfirmed,
			UnderName:         underName,
			ReservedTicket: order.ReservedTicket{
				SeatSection: seatOffer.SeatSection,
				SeatNumber:  seatOffer.SeatNumber,
				TicketName:  seatOffer.TicketName,
				Price:       seatOffer.Price,
				UnderName:   underName,
			},
			ReservationFor: order.EventSummary{
				Identifier: object.Event.Identifier,
				Name:       object.Event.Name,
			},
			Price:         seatOffer.Price,
			PriceCurrency: kernel.JPY,
		}

		offers = append(offers, order.AcceptedOffer{
			ItemOffered:   itemOffered,
			Price:         seatOffer.Price,
			PriceCurrency: kernel.JPY,
			Seller: order.OfferSeller{
				TypeOf: object.Event.Venue.TypeOf,
				Name:   object.Event.Venue.Name.Ja,
			},
		})
	}
	return offers
}
