package http

import (
	"errors"
	"net/http"
	"time"

	"ticketing/internal/core/application/usecases/commands"
	"ticketing/internal/core/application/usecases/queries"
	"ticketing/internal/core/domain/model/kernel"
	"ticketing/internal/core/domain/model/order"
	"ticketing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	confirmOrderHandler commands.ConfirmOrderCommandHandler

	// Query handlers
	getOrderByInquiryKeyHandler queries.GetOrderByInquiryKeyQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	getOrderByInquiryKeyHandler queries.GetOrderByInquiryKeyQueryHandler,
) *Server {
	return &Server{
		confirmOrderHandler:         confirmOrderHandler,
		getOrderByInquiryKeyHandler: getOrderByInquiryKeyHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo router.
func RegisterRoutes(e *echo.Echo, server *Server) {
	e.POST("/api/v1/transactions/:transactionId/confirm", server.ConfirmOrder)
	e.GET("/api/v1/orders/inquiry", server.GetOrderByInquiryKey)
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ConfirmOrderRequest is the optional body of the confirm endpoint.
// OrderDate defaults to the current time when omitted.
type ConfirmOrderRequest struct {
	OrderDate *time.Time `json:"orderDate,omitempty"`
	IsGift    bool       `json:"isGift"`
}

// SeatResponse is one reserved seat on a confirmed order.
type SeatResponse struct {
	SeatSection string `json:"seatSection"`
	SeatNumber  string `json:"seatNumber"`
	TicketName  string `json:"ticketName"`
	Price       int    `json:"price"`
}

// OrderResponse is the representation of a confirmed order returned to the caller.
type OrderResponse struct {
	OrderNumber        string         `json:"orderNumber"`
	ConfirmationNumber string         `json:"confirmationNumber"`
	TheaterCode        string         `json:"theaterCode"`
	SellerName         string         `json:"sellerName"`
	CustomerName       string         `json:"customerName"`
	Price              int            `json:"price"`
	PriceCurrency      string         `json:"priceCurrency"`
	Status             string         `json:"status"`
	URL                string         `json:"url"`
	OrderDate          time.Time      `json:"orderDate"`
	IsGift             bool           `json:"isGift"`
	Seats              []SeatResponse `json:"seats"`
}

// ConfirmOrder handles POST /api/v1/transactions/:transactionId/confirm.
// Assembles an order from the referenced place-order transaction and marks the
// transaction confirmed.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	transactionID, err := kernel.UUIDFromString(ctx.Param("transactionId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid transaction ID",
		})
	}

	var request ConfirmOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderDate := time.Now()
	if request.OrderDate != nil {
		orderDate = *request.OrderDate
	}

	cmd, err := commands.NewConfirmOrderCommand(transactionID, orderDate, request.IsGift)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid confirmation data: " + err.Error(),
		})
	}

	confirmed, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.confirmationError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(confirmed))
}

// confirmationError maps confirmation failures onto HTTP status codes.
func (s *Server) confirmationError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrTransactionNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Transaction not found",
		})
	case errors.Is(err, errs.ErrMissingRequiredData), errors.Is(err, errs.ErrUnsupportedOperation):
		// The transaction cannot yield an order in its current shape.
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid):
		// Already confirmed, expired or canceled.
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to confirm order",
		})
	}
}

// GetOrderByInquiryKey handles GET /api/v1/orders/inquiry - looks an order up
// by theater code, confirmation number and telephone.
func (s *Server) GetOrderByInquiryKey(ctx echo.Context) error {
	query, err := queries.NewGetOrderByInquiryKeyQuery(
		ctx.QueryParam("theater"),
		ctx.QueryParam("reserve"),
		ctx.QueryParam("telephone"),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid inquiry: " + err.Error(),
		})
	}

	result, err := s.getOrderByInquiryKeyHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, result)
}

func toOrderResponse(confirmed *order.Order) OrderResponse {
	offers := confirmed.AcceptedOffers()
	seats := make([]SeatResponse, len(offers))
	for i, offer := range offers {
		ticket := offer.ItemOffered.ReservedTicket
		seats[i] = SeatResponse{
			SeatSection: ticket.SeatSection,
			SeatNumber:  ticket.SeatNumber,
			TicketName:  ticket.TicketName.Ja,
			Price:       ticket.Price,
		}
	}

	return OrderResponse{
		OrderNumber:        confirmed.OrderNumber(),
		ConfirmationNumber: confirmed.ConfirmationNumber(),
		TheaterCode:        confirmed.InquiryKey().TheaterCode(),
		SellerName:         confirmed.Seller().Name,
		CustomerName:       confirmed.Customer().Name,
		Price:              confirmed.Price(),
		PriceCurrency:      confirmed.PriceCurrency().String(),
		Status:             confirmed.Status().String(),
		URL:                confirmed.URL(),
		OrderDate:          confirmed.OrderDate(),
		IsGift:             confirmed.IsGift(),
		Seats:              seats,
	}
}
