// Package queries contains read-only operations over the persisted state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return lightweight response models, bypassing the
// domain aggregates.
package queries

import (
	"errors"

	"ticketing/internal/pkg/guard"
)

var (
	ErrGetOrderByInquiryKeyQueryIsNotConstructed = errors.New(
		"GetOrderByInquiryKeyQuery must be created via NewGetOrderByInquiryKeyQuery constructor",
	)
	ErrTheaterCodeIsRequired        = errors.New("theater code is required")
	ErrConfirmationNumberIsRequired = errors.New("confirmation number is required")
	ErrTelephoneIsRequired          = errors.New("telephone is required")
)

// GetOrderByInquiryKeyQuery retrieves an order by the credentials the
// customer holds after purchase: the theater, the reservation confirmation
// number and the telephone number they supplied.
//
// Example:
//
//	query, err := NewGetOrderByInquiryKeyQuery("001", "12345", "090-0000-0000")
//	if err != nil {
//	    return fmt.Errorf("invalid inquiry: %w", err)
//	}
//
//	handler := NewGetOrderByInquiryKeyQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("order lookup failed: %w", err)
//	}
//	fmt.Printf("Order %s, %d %s\n", result.OrderNumber, result.Price, result.PriceCurrency)
type GetOrderByInquiryKeyQuery struct { //nolint:recvcheck //using for validation
	theaterCode        string
	confirmationNumber string
	telephone          string

	guard guard.ConstructorGuard
}

// NewGetOrderByInquiryKeyQuery creates an order inquiry query.
// All three key parts are required.
func NewGetOrderByInquiryKeyQuery(
	theaterCode string,
	confirmationNumber string,
	telephone string,
) (GetOrderByInquiryKeyQuery, error) {
	inquiryQuery := GetOrderByInquiryKeyQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inquiryQuery.setTheaterCode(theaterCode),
		inquiryQuery.setConfirmationNumber(confirmationNumber),
		inquiryQuery.setTelephone(telephone),
	); err != nil {
		return GetOrderByInquiryKeyQuery{}, err
	}

	return inquiryQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByInquiryKeyQueryIsNotConstructed if validation fails.
func (q GetOrderByInquiryKeyQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByInquiryKeyQueryIsNotConstructed)
}

// TheaterCode returns the reservation system's theater identifier.
func (q GetOrderByInquiryKeyQuery) TheaterCode() string {
	return q.theaterCode
}

// ConfirmationNumber returns the reservation confirmation number.
func (q GetOrderByInquiryKeyQuery) ConfirmationNumber() string {
	return q.confirmationNumber
}

// Telephone returns the telephone number supplied at purchase time.
func (q GetOrderByInquiryKeyQuery) Telephone() string {
	return q.telephone
}

func (q *GetOrderByInquiryKeyQuery) setTheaterCode(theaterCode string) error {
	if theaterCode == "" {
		return ErrTheaterCodeIsRequired
	}

	q.theaterCode = theaterCode
	return nil
}

func (q *GetOrderByInquiryKeyQuery) setConfirmationNumber(confirmationNumber string) error {
	if confirmationNumber == "" {
		return ErrConfirmationNumberIsRequired
	}

	q.confirmationNumber = confirmationNumber
	return nil
}

func (q *GetOrderByInquiryKeyQuery) setTelephone(telephone string) error {
	if telephone == "" {
		return ErrTelephoneIsRequired
	}

	q.telephone = telephone
	return nil
}

// GetOrderByInquiryKeyQueryResponse is the read model returned to the
// inquiring customer: enough to recognize the purchase and retrieve tickets,
// without the full aggregate.
type GetOrderByInquiryKeyQueryResponse struct {
	OrderNumber        string
	ConfirmationNumber string
	TheaterCode        string
	CustomerName       string
	Price              int
	PriceCurrency      string
	Status             string
	URL                string
	SeatCount          int
}
