package transaction

// ActionStatus represents the completion state of an authorize action.
// Only completed actions participate in order assembly; all other states are
// ignored there, never erroring.
type ActionStatus int

const (
	// ActionStatusUnknown represents an invalid or undefined action status.
	ActionStatusUnknown ActionStatus = iota

	// ActionStatusActive indicates the downstream call is still in flight.
	ActionStatusActive

	// ActionStatusCompleted indicates the downstream call succeeded and the
	// action carries a usable result.
	ActionStatusCompleted

	// ActionStatusFailed indicates the downstream call failed.
	ActionStatusFailed

	// ActionStatusCanceled indicates the authorization was voided before the
	// transaction completed.
	ActionStatusCanceled
)

// String returns the human-readable name of the action status.
func (s ActionStatus) String() string {
	switch s {
	case ActionStatusActive:
		return "Active"
	case ActionStatusCompleted:
		return "Completed"
	case ActionStatusFailed:
		return "Failed"
	case ActionStatusCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Purpose classifies an authorize action by what it authorizes.
type Purpose int

const (
	// PurposeUnknown represents an invalid or undefined purpose.
	PurposeUnknown Purpose = iota

	// PurposeSeatReservation marks seat holds in the reservation system.
	PurposeSeatReservation

	// PurposeCreditCard marks card payment authorizations.
	PurposeCreditCard

	// PurposeVoucher marks pre-paid discount voucher authorizations.
	PurposeVoucher

	// PurposeAward marks loyalty-point award authorizations.
	PurposeAward
)

// String returns the human-readable name of the purpose.
func (p Purpose) String() string {
	switch p {
	case PurposeSeatReservation:
		return "SeatReservation"
	case PurposeCreditCard:
		return "CreditCard"
	case PurposeVoucher:
		return "Voucher"
	case PurposeAward:
		return "Award"
	default:
		return "Unknown"
	}
}

// AuthorizeAction is one sub-step of a place-order transaction that can
// independently succeed or fail: a seat hold, a card authorization, a voucher
// redemption, or a loyalty-point award.
//
// The concrete types form a closed tagged union over the known purposes.
// Consumers narrow via PartitionCompletedActions rather than type-switching at
// every call site, so a purpose-specific field can never be read from an
// action of another purpose.
type AuthorizeAction interface {
	// Status reports the completion state of the action.
	Status() ActionStatus

	// Purpose reports what the action authorizes.
	Purpose() Purpose
}

// CompletedActions groups a transaction's completed authorize actions by
// purpose, preserving the relative order of the original action list within
// each group.
type CompletedActions struct {
	SeatReservations []SeatReservationAuthorization
	CreditCards      []CreditCardAuthorization
	Vouchers         []VoucherAuthorization
	Awards           []AwardAuthorization
}

// PartitionCompletedActions classifies an action list in a single traversal.
// Actions whose status is anything other than completed are dropped,
// regardless of purpose. Empty groups are valid and common: an order is not
// required to carry vouchers, card payments or awards.
func PartitionCompletedActions(actions []AuthorizeAction) CompletedActions {
	var completed CompletedActions
	for _, action := range actions {
		if action.Status() != ActionStatusCompleted {
			continue
		}

		switch a := action.(type) {
		case SeatReservationAuthorization:
			completed.SeatReservations = append(completed.SeatReservations, a)
		case CreditCardAuthorization:
			completed.CreditCards = append(completed.CreditCards, a)
		case VoucherAuthorization:
			completed.Vouchers = append(completed.Vouchers, a)
		case AwardAuthorization:
			completed.Awards = append(completed.Awards, a)
		}
	}
	return completed
}
