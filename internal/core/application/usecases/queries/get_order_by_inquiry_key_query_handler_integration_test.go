package queries_test

import (
	"context"
	"testing"
	"time"

	"ticketing/internal/adapters/out/postgres/orderrepo"
	"ticketing/internal/core/application/usecases/queries"
	"ticketing/internal/core/domain/model/kernel"
	"ticketing/internal/core/domain/model/order"
	"ticketing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// nopTracker satisfies the repository's tracker dependency for seeding data.
type nopTracker struct{}

func (nopTracker) TrackAggregate(string, any) {}

// GetOrderByInquiryKeyQueryHandlerIntegrationTestSuite verifies the inquiry
// read path against a real PostgreSQL database, seeded through the write-side
// repository.
type GetOrderByInquiryKeyQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderByInquiryKeyQueryHandler
}

func (suite *GetOrderByInquiryKeyQueryHandlerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetOrderByInquiryKeyQueryHandler(db)
}

func (suite *GetOrderByInquiryKeyQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrderByInquiryKeyQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderByInquiryKeyQueryHandlerIntegrationTestSuite) TestHandle_MatchingKey_ReturnsReadModel() {
	ctx := context.Background()
	suite.seedOrder("12345")

	query, err := queries.NewGetOrderByInquiryKeyQuery("118", "12345", "09012345678")
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("2020-01-15-118-12345", response.OrderNumber)
	suite.Equal("12345", response.ConfirmationNumber)
	suite.Equal("118", response.TheaterCode)
	suite.Equal("山田 太郎", response.CustomerName)
	suite.Equal(1200, response.Price)
	suite.Equal("JPY", response.PriceCurrency)
	suite.Equal("OrderDelivered", response.Status)
	suite.Equal("/inquiry/login?theater=118&reserve=12345", response.URL)
	suite.Equal(2, response.SeatCount)
}

func (suite *GetOrderByInquiryKeyQueryHandlerIntegrationTestSuite) TestHandle_AnyMismatchedPart_ReturnsNotFound() {
	ctx := context.Background()
	suite.seedOrder("12345")

	testCases := []struct {
		name               string
		theaterCode        string
		confirmationNumber string
		telephone          string
	}{
		{"wrong theater", "999", "12345", "09012345678"},
		{"wrong confirmation number", "118", "99999", "09012345678"},
		{"wrong telephone", "118", "12345", "09000000000"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			query, err := queries.NewGetOrderByInquiryKeyQuery(
				tc.theaterCode, tc.confirmationNumber, tc.telephone)
			suite.Require().NoError(err)

			_, err = suite.handler.Handle(ctx, query)
			suite.Require().Error(err)
			suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
		})
	}
}

func (suite *GetOrderByInquiryKeyQueryHandlerIntegrationTestSuite) TestHandle_EmptyDatabase_ReturnsNotFound() {
	ctx := context.Background()

	query, err := queries.NewGetOrderByInquiryKeyQuery("118", "12345", "09012345678")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderByInquiryKeyQueryHandlerIntegrationTestSuite) TestHandle_UnconstructedQuery_Fails() {
	ctx := context.Background()

	_, err := suite.handler.Handle(ctx, queries.GetOrderByInquiryKeyQuery{})
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetOrderByInquiryKeyQueryIsNotConstructed)
}

// seedOrder persists a two-seat order through the write-side repository so the
// read model is projected from real rows.
func (suite *GetOrderByInquiryKeyQueryHandlerIntegrationTestSuite) seedOrder(confirmationNumber string) {
	inquiryKey, err := order.NewInquiryKey("118", confirmationNumber, "09012345678")
	suite.Require().NoError(err)

	holder := order.ReservationHolder{
		TypeOf: "Person",
		Name:   kernel.NewUniformMultilingualString("山田 太郎"),
	}

	offers := make([]order.AcceptedOffer, 0, 2)
	for _, seatNumber := range []string{"A-1", "A-2"} {
		offers = append(offers, order.AcceptedOffer{
			ItemOffered: order.EventReservation{
				TypeOf:            "EventReservation",
				ReservationNumber: confirmationNumber,
				ReservationStatus: order.ReservationConfirmed,
				UnderName:         holder,
				ReservedTicket: order.ReservedTicket{
					SeatSection: "default",
					SeatNumber:  seatNumber,
					TicketName:  kernel.NewMultilingualString("一般", "Adult"),
					Price:       900,
					UnderName:   holder,
				},
				ReservationFor: order.EventSummary{
					Identifier: "118-20200115-001",
					Name:       kernel.NewMultilingualString("シネマ物語", "Cinema Story"),
				},
				Price:         900,
				PriceCurrency: kernel.JPY,
			},
			Price:         900,
			PriceCurrency: kernel.JPY,
			Seller: order.OfferSeller{
				TypeOf: "MovieTheater",
				Name:   "シネマサンシャイン池袋",
			},
		})
	}

	seeded, err := order.NewOrder(order.Params{
		Seller: order.Seller{
			TypeOf: "MovieTheater",
			ID:     "118",
			Name:   "シネマサンシャイン池袋",
		},
		Customer: order.Customer{
			ID:         "customer-1",
			TypeOf:     "Person",
			Name:       "山田 太郎",
			Telephone:  "09012345678",
			FamilyName: "山田",
			GivenName:  "太郎",
		},
		Price:              1200,
		PriceCurrency:      kernel.JPY,
		PaymentMethods:     []order.PaymentMethod{},
		Discounts:          []order.Discount{order.NewDiscount("ムビチケカード", 600, "3400000000000", kernel.JPY)},
		ConfirmationNumber: confirmationNumber,
		OrderNumber:        "2020-01-15-118-" + confirmationNumber,
		AcceptedOffers:     offers,
		URL:                "/inquiry/login?theater=118&reserve=" + confirmationNumber,
		Status:             order.OrderDelivered,
		OrderDate:          time.Date(2020, 1, 15, 9, 0, 0, 0, time.UTC),
		InquiryKey:         inquiryKey,
	})
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, nopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), seeded))
}

func TestGetOrderByInquiryKeyQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderByInquiryKeyQueryHandlerIntegrationTestSuite))
}
