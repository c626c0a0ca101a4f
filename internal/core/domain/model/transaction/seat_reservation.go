package transaction

import (
	"ticketing/internal/core/domain/model/kernel"
)

// Venue is the movie theater hosting a screening, as carried on the screening
// event's super event. The order's accepted offers name it as their seller.
type Venue struct {
	TypeOf string
	Name   kernel.MultilingualString
}

// ScreeningEvent identifies the individual screening the seats were reserved
// for. Produced by the event sub-factory; the core only reads it.
type ScreeningEvent struct {
	Identifier string
	Name       kernel.MultilingualString

	// Venue is the super-event location, i.e. the theater rather than the
	// screen the event plays in.
	Venue Venue
}

// SeatOffer is one seat the customer asked to reserve, with the ticket price
// the reservation system quoted for it.
type SeatOffer struct {
	SeatSection string
	SeatNumber  string
	TicketName  kernel.MultilingualString
	Price       int
}

// ReservedSeat is one seat the reservation system actually held.
type ReservedSeat struct {
	Section string
	Number  string
}

// SeatReservationObject is the request half of a seat-reservation
// authorization: which screening, which seats, at which quoted prices.
type SeatReservationObject struct {
	Event  ScreeningEvent
	Offers []SeatOffer
}

// SeatReservationResult is the response half: the reservation system's
// confirmation payload. Its seat count matches the requested offers; any
// inconsistency is rejected by the reservation sub-factory before an
// authorization is ever built.
type SeatReservationResult struct {
	// Price is the gross total for all reserved seats.
	Price int

	// TheaterCode identifies the theater in the reservation system.
	TheaterCode string

	// ConfirmationNumber is the provisional reservation number the customer
	// uses to retrieve the order later.
	ConfirmationNumber string

	Seats []ReservedSeat
}

// SeatReservationAuthorization is the authorize action representing seat holds
// in the external reservation system. Exactly one completed instance must be
// present for a transaction to become an order.
type SeatReservationAuthorization struct {
	status ActionStatus
	object SeatReservationObject
	result *SeatReservationResult
}

// NewSeatReservationAuthorization creates a seat-reservation authorization
// snapshot. The result is nil while the downstream call has not returned.
func NewSeatReservationAuthorization(
	status ActionStatus,
	object SeatReservationObject,
	result *SeatReservationResult,
) SeatReservationAuthorization {
	return SeatReservationAuthorization{
		status: status,
		object: object,
		result: result,
	}
}

// Status reports the completion state of the authorization.
func (a SeatReservationAuthorization) Status() ActionStatus {
	return a.status
}

// Purpose reports PurposeSeatReservation.
func (a SeatReservationAuthorization) Purpose() Purpose {
	return PurposeSeatReservation
}

// Object returns the request parameters of the authorization.
func (a SeatReservationAuthorization) Object() SeatReservationObject {
	return a.object
}

// Result returns the reservation system's confirmation payload, or nil if the
// downstream call never returned data.
func (a SeatReservationAuthorization) Result() *SeatReservationResult {
	return a.result
}
