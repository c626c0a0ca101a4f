package order

import (
	"fmt"

	"ticketing/internal/pkg/errs"
)

// Status represents the delivery state of an order. The assembler copies the
// caller-supplied status verbatim onto the order; it never derives one.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// OrderProcessing indicates the order is being prepared.
	OrderProcessing

	// OrderDelivered indicates the order was handed over to the customer.
	// Ticket orders are considered delivered at confirmation time since the
	// customer immediately holds the reservation.
	OrderDelivered

	// OrderPickupAvailable indicates tickets are ready for pickup at the
	// theater.
	OrderPickupAvailable

	// OrderReturned indicates the order was returned and refunded.
	OrderReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		OrderProcessing:      "OrderProcessing",
		OrderDelivered:       "OrderDelivered",
		OrderPickupAvailable: "OrderPickupAvailable",
		OrderReturned:        "OrderReturned",
	}
}

// Validate checks if the Status value is one of the defined order states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
