package queries

import (
	"context"
	"database/sql"
	"errors"

	"ticketing/internal/core/domain/model/order"
	"ticketing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByInquiryKeyQueryHandler looks an order up by its inquiry key.
// Reads the orders table directly and projects a response model; the domain
// aggregate is never rehydrated on the read path.
//
// Example:
//
//	handler := NewGetOrderByInquiryKeyQueryHandler(db)
//	query, _ := NewGetOrderByInquiryKeyQuery("001", "12345", "090-0000-0000")
//
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // No order matches the supplied credentials
//	    return
//	}
type GetOrderByInquiryKeyQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByInquiryKeyQueryHandler creates a handler for order inquiries.
// Requires a GORM database connection for query execution.
func NewGetOrderByInquiryKeyQueryHandler(db *gorm.DB) GetOrderByInquiryKeyQueryHandler {
	return GetOrderByInquiryKeyQueryHandler{db: db}
}

// Handle executes the inquiry. All three key parts must match the same order;
// a mismatch on any of them reports errs.ErrObjectNotFound rather than
// disclosing which part was wrong.
func (h GetOrderByInquiryKeyQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByInquiryKeyQuery,
) (GetOrderByInquiryKeyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByInquiryKeyQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			confirmation_number,
			theater_code,
			customer_name,
			price,
			price_currency,
			status,
			url,
			jsonb_array_length(accepted_offers)
		FROM orders
		WHERE theater_code = ?
		  AND confirmation_number = ?
		  AND telephone = ?
	`, query.TheaterCode(), query.ConfirmationNumber(), query.Telephone()).Row()

	var response GetOrderByInquiryKeyQueryResponse
	var status int
	err := row.Scan(
		&response.OrderNumber,
		&response.ConfirmationNumber,
		&response.TheaterCode,
		&response.CustomerName,
		&response.Price,
		&response.PriceCurrency,
		&status,
		&response.URL,
		&response.SeatCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByInquiryKeyQueryResponse{}, errs.NewObjectNotFoundError(
			"order", query.ConfirmationNumber())
	}
	if err != nil {
		return GetOrderByInquiryKeyQueryResponse{}, err
	}

	response.Status = order.Status(status).String()
	return response, nil
}
