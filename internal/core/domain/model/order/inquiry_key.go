package order

import (
	"errors"

	"ticketing/internal/pkg/errs"
	"ticketing/internal/pkg/guard"
)

// ErrInquiryKeyIsNotConstructed is returned when an InquiryKey was not created
// through the NewInquiryKey constructor.
var ErrInquiryKeyIsNotConstructed = errs.NewValueIsRequiredError(
	"InquiryKey must be created via NewInquiryKey constructor")

// InquiryKey is the composite lookup key that lets a customer retrieve their
// order later without authentication credentials: the theater, the reservation
// confirmation number, and the telephone number supplied at purchase time.
//
// Inquiry keys are always derived during assembly, never constructed
// independently of an order.
type InquiryKey struct { //nolint:recvcheck //using for validation
	theaterCode        string
	confirmationNumber string
	telephone          string

	guard guard.ConstructorGuard
}

// NewInquiryKey creates an inquiry key from its three parts.
// All parts are required.
func NewInquiryKey(theaterCode string, confirmationNumber string, telephone string) (InquiryKey, error) {
	key := InquiryKey{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		key.setTheaterCode(theaterCode),
		key.setConfirmationNumber(confirmationNumber),
		key.setTelephone(telephone),
	); err != nil {
		return InquiryKey{}, err
	}

	return key, nil
}

// Validate ensures the key was created through the constructor.
func (k InquiryKey) Validate() error {
	return k.guard.Validate(ErrInquiryKeyIsNotConstructed)
}

// TheaterCode returns the reservation system's theater identifier.
func (k InquiryKey) TheaterCode() string {
	return k.theaterCode
}

// ConfirmationNumber returns the reservation confirmation number.
func (k InquiryKey) ConfirmationNumber() string {
	return k.confirmationNumber
}

// Telephone returns the telephone number supplied at purchase time.
func (k InquiryKey) Telephone() string {
	return k.telephone
}

// IsEqual compares two inquiry keys part by part.
func (k InquiryKey) IsEqual(other InquiryKey) bool {
	return k.theaterCode == other.theaterCode &&
		k.confirmationNumber == other.confirmationNumber &&
		k.telephone == other.telephone
}

func (k *InquiryKey) setTheaterCode(theaterCode string) error {
	if theaterCode == "" {
		return errs.NewValueIsRequiredError("theaterCode")
	}
	k.theaterCode = theaterCode
	return nil
}

func (k *InquiryKey) setConfirmationNumber(confirmationNumber string) error {
	if confirmationNumber == "" {
		return errs.NewValueIsRequiredError("confirmationNumber")
	}
	k.confirmationNumber = confirmationNumber
	return nil
}

func (k *InquiryKey) setTelephone(telephone string) error {
	if telephone == "" {
		return errs.NewValueIsRequiredError("telephone")
	}
	k.telephone = telephone
	return nil
}
