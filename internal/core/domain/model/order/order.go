package order

import (
	"errors"
	"time"

	"ticketing/internal/core/domain/model/kernel"
	"ticketing/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// TypeOfOrder is the schema type discriminator every order carries.
const TypeOfOrder = "Order"

// Order is the immutable confirmation of a place-order transaction, i.e. the
// receipt. It is constructed once, atomically, by order assembly and never
// mutated afterward; later stages may persist or transmit it but do not
// revise its fields.
//
// Order follows these invariants:
//   - Must carry a valid inquiry key, order status and settlement currency
//   - Exclusively owns its nested discounts, paymentMethods and
//     acceptedOffers sequences; they are not shared with the transaction
//   - Can only be created through the NewOrder constructor
type Order struct {
	seller             Seller
	customer           Customer
	price              int
	priceCurrency      kernel.Currency
	paymentMethods     []PaymentMethod
	discounts          []Discount
	confirmationNumber string
	orderNumber        string
	acceptedOffers     []AcceptedOffer
	url                string
	status             Status
	orderDate          time.Time
	isGift             bool
	inquiryKey         InquiryKey

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// Params carries every field of an order into NewOrder. All sequence fields
// are copied on construction so the caller keeps no handle into the order.
type Params struct {
	Seller             Seller
	Customer           Customer
	Price              int
	PriceCurrency      kernel.Currency
	PaymentMethods     []PaymentMethod
	Discounts          []Discount
	ConfirmationNumber string
	OrderNumber        string
	AcceptedOffers     []AcceptedOffer
	URL                string
	Status             Status
	OrderDate          time.Time
	IsGift             bool
	InquiryKey         InquiryKey
}

// NewOrder creates a fully populated, immutable Order.
//
// The price is deliberately not checked against zero: a discount total larger
// than the reservation price yields a negative net price, which is passed
// through for downstream systems to police.
func NewOrder(params Params) (*Order, error) {
	if err := errors.Join(
		params.InquiryKey.Validate(),
		params.Status.Validate(),
		params.PriceCurrency.Validate(),
		validateRequired("orderNumber", params.OrderNumber),
		validateRequired("confirmationNumber", params.ConfirmationNumber),
		validateRequired("url", params.URL),
	); err != nil {
		return nil, err
	}

	return &Order{
		seller:             params.Seller,
		customer:           params.Customer,
		price:              params.Price,
		priceCurrency:      params.PriceCurrency,
		paymentMethods:     copySlice(params.PaymentMethods),
		discounts:          copySlice(params.Discounts),
		confirmationNumber: params.ConfirmationNumber,
		orderNumber:        params.OrderNumber,
		acceptedOffers:     copySlice(params.AcceptedOffers),
		url:                params.URL,
		status:             params.Status,
		orderDate:          params.OrderDate,
		isGift:             params.IsGift,
		inquiryKey:         params.InquiryKey,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating the
// struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.orderNumber == other.orderNumber
}

// TypeOf returns the schema type discriminator, always "Order".
func (o *Order) TypeOf() string {
	return TypeOfOrder
}

// Seller returns the ticketing seller the order was placed against.
func (o *Order) Seller() Seller {
	return o.seller
}

// Customer returns the purchasing customer as recorded on the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// Price returns the net price: the reservation's gross total minus all
// discounts. May be negative; see NewOrder.
func (o *Order) Price() int {
	return o.price
}

// PriceCurrency returns the settlement currency of the order.
func (o *Order) PriceCurrency() kernel.Currency {
	return o.priceCurrency
}

// PaymentMethods returns the payment instruments used to settle the order.
// The returned slice is a copy.
func (o *Order) PaymentMethods() []PaymentMethod {
	return copySlice(o.paymentMethods)
}

// Discounts returns the discounts applied to the order.
// The returned slice is a copy.
func (o *Order) Discounts() []Discount {
	return copySlice(o.discounts)
}

// ConfirmationNumber returns the reservation confirmation number.
func (o *Order) ConfirmationNumber() string {
	return o.confirmationNumber
}

// OrderNumber returns the human-presentable order identifier of the shape
// <YYYY-MM-DD>-<theaterCode>-<confirmationNumber>.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// AcceptedOffers returns the purchased line items, one per reserved seat.
// The returned slice is a copy.
func (o *Order) AcceptedOffers() []AcceptedOffer {
	return copySlice(o.acceptedOffers)
}

// URL returns the customer-facing inquiry URL for the order.
func (o *Order) URL() string {
	return o.url
}

// Status returns the delivery state of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderDate returns the instant the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// IsGift reports whether the order was marked as a gift.
func (o *Order) IsGift() bool {
	return o.isGift
}

// InquiryKey returns the composite key the customer retrieves the order by.
func (o *Order) InquiryKey() InquiryKey {
	return o.inquiryKey
}

func validateRequired(paramName string, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

// copySlice always returns a fresh, non-nil slice so empty sequences survive
// serialization as [] rather than null.
func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
