package transaction

import (
	"fmt"

	"ticketing/internal/pkg/errs"
)

// Status represents the lifecycle state of a place-order transaction.
//
// State transitions:
//
//	InProgress ──┬──> Confirmed
//	             ├──> Expired
//	             └──> Canceled
//
// Confirmed, Expired and Canceled are final states.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// InProgress is the initial status while authorize actions are still
	// being accumulated on the transaction.
	InProgress

	// Confirmed indicates the transaction has been confirmed and an order
	// has been assembled from it.
	Confirmed

	// Expired indicates the transaction passed its deadline before being
	// confirmed.
	Expired

	// Canceled indicates the customer abandoned the transaction.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		InProgress:    "InProgress",
		Confirmed:     "Confirmed",
		Expired:       "Expired",
		Canceled:      "Canceled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
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

// Confirm transitions the status to Confirmed.
// Only an InProgress transaction can be confirmed.
func (s Status) Confirm() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}
	return Confirmed, nil
}

// Expire transitions the status to Expired.
// Only an InProgress transaction can expire.
func (s Status) Expire() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to expire", s.String()),
		)
	}
	return Expired, nil
}
