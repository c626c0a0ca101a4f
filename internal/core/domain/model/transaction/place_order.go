package transaction

import (
	"errors"
	"time"

	"ticketing/internal/core/domain/model/kernel"
)

// ErrPlaceOrderIsNotConstructed is returned when a PlaceOrder instance was not
// created through the NewPlaceOrder or RestorePlaceOrder factory methods.
var ErrPlaceOrderIsNotConstructed = errors.New(
	"PlaceOrder must be created via NewPlaceOrder or RestorePlaceOrder constructors")

// PlaceOrder is the aggregate representing an end-to-end purchase flow.
// It accumulates a heterogeneous, variable-length list of authorize actions
// (seat reservation, card payment, voucher redemption, loyalty award) while
// in progress, and is confirmed into an Order once complete.
//
// PlaceOrder follows these invariants:
//   - Must have a valid unique identifier, agent and seller
//   - Status transitions follow InProgress -> Confirmed | Expired | Canceled
//   - Can only be created through its constructors
//
// Once the transaction is handed to order assembly it is treated as an
// immutable snapshot; the assembler never mutates it.
type PlaceOrder struct {
	// id is the unique identifier for the transaction
	id kernel.UUID

	// status is the current lifecycle state
	status Status

	// agent is the purchasing customer
	agent Agent

	// seller is the ticketing seller
	seller Seller

	// customerContact is set once the customer supplies contact details
	// (nil until then)
	customerContact *CustomerContact

	// authorizeActions is the ordered sequence of accumulated sub-steps
	authorizeActions []AuthorizeAction

	// expires is the deadline for confirming the transaction
	expires time.Time

	// isConstructed ensures the transaction was created via a constructor
	isConstructed bool
}

// NewPlaceOrder starts a new place-order transaction in InProgress status.
func NewPlaceOrder(id kernel.UUID, agent Agent, seller Seller, expires time.Time) (*PlaceOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &PlaceOrder{
		id:            id,
		status:        InProgress,
		agent:         agent,
		seller:        seller,
		expires:       expires,
		isConstructed: true,
	}, nil
}

// RestorePlaceOrder reconstructs a transaction from persistence with its full
// state. Used only by repository implementations.
func RestorePlaceOrder(
	id kernel.UUID,
	status Status,
	agent Agent,
	seller Seller,
	customerContact *CustomerContact,
	authorizeActions []AuthorizeAction,
	expires time.Time,
) (*PlaceOrder, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &PlaceOrder{
		id:               id,
		status:           status,
		agent:            agent,
		seller:           seller,
		customerContact:  customerContact,
		authorizeActions: authorizeActions,
		expires:          expires,
		isConstructed:    true,
	}, nil
}

// Validate ensures the PlaceOrder instance was properly constructed.
func (t *PlaceOrder) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrPlaceOrderIsNotConstructed
	}
	return nil
}

// ID returns the transaction's unique identifier.
func (t *PlaceOrder) ID() kernel.UUID {
	return t.id
}

// Status returns the current lifecycle state of the transaction.
func (t *PlaceOrder) Status() Status {
	return t.status
}

// Agent returns the purchasing customer.
func (t *PlaceOrder) Agent() Agent {
	return t.agent
}

// Seller returns the ticketing seller.
func (t *PlaceOrder) Seller() Seller {
	return t.seller
}

// CustomerContact returns the contact details the customer supplied,
// or nil if none were set yet.
func (t *PlaceOrder) CustomerContact() *CustomerContact {
	return t.customerContact
}

// AuthorizeActions returns the accumulated authorize actions in the order they
// were added. The returned slice is a copy; mutating it does not affect the
// transaction.
func (t *PlaceOrder) AuthorizeActions() []AuthorizeAction {
	actions := make([]AuthorizeAction, len(t.authorizeActions))
	copy(actions, t.authorizeActions)
	return actions
}

// Expires returns the confirmation deadline of the transaction.
func (t *PlaceOrder) Expires() time.Time {
	return t.expires
}

// SetCustomerContact records the customer's contact details on the
// transaction. May be called again to replace earlier details while the
// transaction is still in progress.
func (t *PlaceOrder) SetCustomerContact(contact CustomerContact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	t.customerContact = &contact
	return nil
}

// AddAuthorizeAction appends an authorize action produced by one of the
// action builders. Actions are kept in arrival order; assembly later filters
// them by completion status and purpose.
func (t *PlaceOrder) AddAuthorizeAction(action AuthorizeAction) {
	t.authorizeActions = append(t.authorizeActions, action)
}

// PartitionCompletedActions classifies the transaction's completed actions by
// purpose in a single traversal. See PartitionCompletedActions for the
// grouping rules.
func (t *PlaceOrder) PartitionCompletedActions() CompletedActions {
	return PartitionCompletedActions(t.authorizeActions)
}

// Confirm marks the transaction as confirmed.
// Only an InProgress transaction can be confirmed.
func (t *PlaceOrder) Confirm() error {
	newStatus, err := t.status.Confirm()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// IsExpired reports whether the confirmation deadline has passed at the given
// instant.
func (t *PlaceOrder) IsExpired(now time.Time) bool {
	return now.After(t.expires)
}

// Expire marks the transaction as expired.
// Only an InProgress transaction can expire.
func (t *PlaceOrder) Expire() error {
	newStatus, err := t.status.Expire()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}
