package transaction

import (
	"errors"

	"ticketing/internal/core/domain/model/kernel"
	"ticketing/internal/pkg/errs"
	"ticketing/internal/pkg/guard"
)

// ProgramMembership is an optional membership reference carried by the
// purchasing customer. When present it is copied onto the assembled order's
// customer record.
type ProgramMembership struct {
	TypeOf           string
	ProgramName      string
	MembershipNumber string
}

// Agent is the purchasing customer as identified by the transaction system.
// Produced and validated by the transaction-management collaborator; the core
// only reads it.
type Agent struct {
	ID       string
	TypeOf   string
	MemberOf *ProgramMembership
}

// Seller is the ticketing seller the transaction is placed against.
type Seller struct {
	TypeOf string
	ID     string
	Name   string
	URL    string
}

// ErrCustomerContactIsNotConstructed is returned when a CustomerContact was
// not created through the NewCustomerContact constructor.
var ErrCustomerContactIsNotConstructed = errs.NewValueIsRequiredError(
	"CustomerContact must be created via NewCustomerContact constructor")

// CustomerContact is the contact information the customer supplied during the
// transaction. An order cannot be assembled without it: the telephone number
// becomes part of the inquiry key and the name is stamped onto every
// reservation.
type CustomerContact struct { //nolint:recvcheck //using for validation
	name      kernel.PersonName
	telephone string
	email     string

	guard guard.ConstructorGuard
}

// NewCustomerContact creates a validated customer contact.
// The name must be constructed and the telephone must be non-empty; the email
// is optional.
func NewCustomerContact(name kernel.PersonName, telephone string, email string) (CustomerContact, error) {
	contact := CustomerContact{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contact.setName(name),
		contact.setTelephone(telephone),
	); err != nil {
		return CustomerContact{}, err
	}

	contact.email = email
	return contact, nil
}

// Validate ensures the contact was created through the constructor.
func (c CustomerContact) Validate() error {
	return c.guard.Validate(ErrCustomerContactIsNotConstructed)
}

// Name returns the customer's name.
func (c CustomerContact) Name() kernel.PersonName {
	return c.name
}

// Telephone returns the customer's telephone number.
func (c CustomerContact) Telephone() string {
	return c.telephone
}

// Email returns the customer's email address, possibly empty.
func (c CustomerContact) Email() string {
	return c.email
}

func (c *CustomerContact) setName(name kernel.PersonName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *CustomerContact) setTelephone(telephone string) error {
	if telephone == "" {
		return errs.NewValueIsRequiredError("telephone")
	}
	c.telephone = telephone
	return nil
}
