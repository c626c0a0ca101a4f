package order

import (
	"ticketing/internal/core/domain/model/kernel"
)

// ReservationStatus is the hold state of a reservation embedded in an order.
type ReservationStatus string

const (
	// ReservationConfirmed marks a reservation the customer holds for good.
	// Every reservation wrapped into an accepted offer carries this status.
	ReservationConfirmed ReservationStatus = "ReservationConfirmed"

	// ReservationPending marks a provisional hold awaiting confirmation.
	ReservationPending ReservationStatus = "ReservationPending"

	// ReservationCancelled marks a released hold.
	ReservationCancelled ReservationStatus = "ReservationCancelled"
)

// ReservationHolder names who a reservation (or its ticket) is held under.
type ReservationHolder struct {
	TypeOf string
	Name   kernel.MultilingualString
}

// EventSummary identifies the screening a reservation is for.
type EventSummary struct {
	Identifier string
	Name       kernel.MultilingualString
}

// ReservedTicket is the admission ticket half of an event reservation:
// one seat, its quoted price, and who it is held under.
type ReservedTicket struct {
	SeatSection string
	SeatNumber  string
	TicketName  kernel.MultilingualString
	Price       int
	UnderName   ReservationHolder
}

// EventReservation is one confirmed seat reservation embedded in an order as
// a line item. It is a freshly stamped copy of reservation data, never a
// shared reference back into the transaction's seat-reservation result, so
// later mutation of the transaction cannot retroactively alter an emitted
// order.
type EventReservation struct {
	TypeOf            string
	ReservationNumber string
	ReservationStatus ReservationStatus
	UnderName         ReservationHolder
	ReservedTicket    ReservedTicket
	ReservationFor    EventSummary
	Price             int
	PriceCurrency     kernel.Currency
}

// OfferSeller is the party an accepted offer is sold by. For ticket orders
// this is the venue hosting the screening, not the ticketing seller.
type OfferSeller struct {
	TypeOf string
	Name   string
}

// AcceptedOffer is one purchased line item of an order: a confirmed seat
// reservation together with its price and the venue selling it.
type AcceptedOffer struct {
	ItemOffered   EventReservation
	Price         int
	PriceCurrency kernel.Currency
	Seller        OfferSeller
}

// Discount is one price reduction applied to an order. A voucher action that
// redeemed several cards appears as a single discount whose code joins the
// individual voucher codes with commas.
type Discount struct {
	name     string
	amount   int
	code     string
	currency kernel.Currency
}

// NewDiscount creates a discount line.
func NewDiscount(name string, amount int, code string, currency kernel.Currency) Discount {
	return Discount{
		name:     name,
		amount:   amount,
		code:     code,
		currency: currency,
	}
}

// Name returns the customer-facing name of the discount.
func (d Discount) Name() string {
	return d.name
}

// Amount returns the amount the discount reduces the order price by.
func (d Discount) Amount() int {
	return d.amount
}

// Code returns the voucher code(s) behind the discount, comma separated when
// several cards were redeemed in one action.
func (d Discount) Code() string {
	return d.code
}

// Currency returns the settlement currency of the discount amount.
func (d Discount) Currency() kernel.Currency {
	return d.currency
}

// PaymentMethod is one payment instrument used to settle an order.
type PaymentMethod struct {
	name     string
	method   string
	methodID string
}

// NewPaymentMethod creates a payment method line.
func NewPaymentMethod(name string, method string, methodID string) PaymentMethod {
	return PaymentMethod{
		name:     name,
		method:   method,
		methodID: methodID,
	}
}

// Name returns the customer-facing name of the payment method.
func (p PaymentMethod) Name() string {
	return p.name
}

// Method returns the payment method identifier, e.g. "CreditCard".
func (p PaymentMethod) Method() string {
	return p.method
}

// MethodID returns the payment gateway's transaction/order identifier.
func (p PaymentMethod) MethodID() string {
	return p.methodID
}
