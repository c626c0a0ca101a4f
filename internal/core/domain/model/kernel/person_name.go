package kernel

import (
	"errors"

	"ticketing/internal/pkg/errs"
	"ticketing/internal/pkg/guard"
)

// ErrPersonNameIsNotConstructed is returned when a PersonName was not created
// through the NewPersonName constructor.
var ErrPersonNameIsNotConstructed = errs.NewValueIsRequiredError(
	"PersonName must be created via NewPersonName constructor")

// PersonName is an immutable value object holding a customer's family and given
// names. The display form follows the source-locale convention: family name
// first, then given name, separated by a single space.
type PersonName struct { //nolint:recvcheck //using for validation
	familyName string
	givenName  string
	guard      guard.ConstructorGuard
}

// NewPersonName creates a PersonName from its parts.
// Both the family name and the given name must be non-empty.
func NewPersonName(familyName string, givenName string) (PersonName, error) {
	name := PersonName{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		name.setFamilyName(familyName),
		name.setGivenName(givenName),
	); err != nil {
		return PersonName{}, err
	}

	return name, nil
}

// Validate checks that the PersonName was properly constructed.
func (n PersonName) Validate() error {
	return n.guard.Validate(ErrPersonNameIsNotConstructed)
}

// FamilyName returns the family name part.
func (n PersonName) FamilyName() string {
	return n.familyName
}

// GivenName returns the given name part.
func (n PersonName) GivenName() string {
	return n.givenName
}

// DisplayName returns the full name as shown to the customer:
// family name, a single space, given name. This ordering is deliberately the
// source-locale convention, not a locale-generic formatting.
func (n PersonName) DisplayName() string {
	return n.familyName + " " + n.givenName
}

func (n *PersonName) setFamilyName(familyName string) error {
	if familyName == "" {
		return errs.NewValueIsRequiredError("familyName")
	}
	n.familyName = familyName
	return nil
}

func (n *PersonName) setGivenName(givenName string) error {
	if givenName == "" {
		return errs.NewValueIsRequiredError("givenName")
	}
	n.givenName = givenName
	return nil
}
