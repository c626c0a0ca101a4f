package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "ticketing/internal/adapters/out/postgres"
	"ticketing/internal/adapters/out/postgres/orderrepo"
	"ticketing/internal/adapters/out/postgres/transactionrepo"
	"ticketing/internal/core/domain/model/kernel"
	"ticketing/internal/core/domain/model/order"
	"ticketing/internal/core/domain/model/transaction"
	"ticketing/internal/core/domain/services"
	"ticketing/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &transactionrepo.PlaceOrderDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, place_order_transactions").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.TransactionRepository(), "First instance should provide transaction repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.TransactionRepository(), "Second instance should provide transaction repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	placeOrder := suite.createConfirmableTransaction("10001")

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add transaction within unit of work
	err = uow.TransactionRepository().Add(ctx, placeOrder)
	suite.Require().NoError(err)

	// Verify transaction exists within unit of work
	retrieved, err := uow.TransactionRepository().Get(ctx, placeOrder.ID())
	suite.Require().NoError(err)
	suite.True(placeOrder.ID().IsEqual(retrieved.ID()))

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify transaction persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.TransactionRepository().Get(ctx, placeOrder.ID())
	suite.Require().NoError(err)
	suite.True(placeOrder.ID().IsEqual(retrieved.ID()))
}

// TestUnitOfWork_ConfirmOrderWorkflow tests the complete order confirmation
// workflow involving both aggregates within a single transaction: the
// place-order transaction is confirmed and its assembled order is persisted
// atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConfirmOrderWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	placeOrder := suite.createConfirmableTransaction("10002")

	// Begin transaction for the entire workflow
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Step 1: Persist the in-progress transaction
	err = uow.TransactionRepository().Add(ctx, placeOrder)
	suite.Require().NoError(err)

	// Step 2: Assemble the order from the completed transaction
	orderDate := time.Date(2020, 1, 15, 9, 0, 0, 0, time.UTC)
	assembled, err := services.NewOrderAssembler().Assemble(placeOrder, orderDate, order.OrderDelivered, false)
	suite.Require().NoError(err)

	// Step 3: Confirm the transaction (domain operation)
	err = placeOrder.Confirm()
	suite.Require().NoError(err)

	// Step 4: Persist both sides atomically
	err = uow.OrderRepository().Add(ctx, assembled)
	suite.Require().NoError(err)
	err = uow.TransactionRepository().Update(ctx, placeOrder)
	suite.Require().NoError(err)

	// Commit the entire workflow
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().GetByOrderNumber(ctx, assembled.OrderNumber())
	suite.Require().NoError(err)
	suite.True(assembled.IsEqual(retrievedOrder))
	suite.Equal("2020-01-15-118-10002", retrievedOrder.OrderNumber())

	retrievedByKey, err := newUow.OrderRepository().GetByInquiryKey(ctx, assembled.InquiryKey())
	suite.Require().NoError(err)
	suite.True(assembled.IsEqual(retrievedByKey))

	retrievedTx, err := newUow.TransactionRepository().Get(ctx, placeOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(transaction.Confirmed, retrievedTx.Status())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	placeOrder := suite.createConfirmableTransaction("10003")

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add both aggregates within transaction
	err = uow.TransactionRepository().Add(ctx, placeOrder)
	suite.Require().NoError(err)

	orderDate := time.Date(2020, 1, 15, 9, 0, 0, 0, time.UTC)
	assembled, err := services.NewOrderAssembler().Assemble(placeOrder, orderDate, order.OrderDelivered, false)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, assembled)
	suite.Require().NoError(err)

	// Verify both exist within transaction
	_, err = uow.TransactionRepository().Get(ctx, placeOrder.ID())
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().GetByOrderNumber(ctx, assembled.OrderNumber())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify neither exists after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.TransactionRepository().Get(ctx, placeOrder.ID())
	suite.Require().Error(err, "Transaction should not exist after rollback")

	_, err = newUow.OrderRepository().GetByOrderNumber(ctx, assembled.OrderNumber())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	tx1 := suite.createConfirmableTransaction("10004")
	tx2 := suite.createConfirmableTransaction("10005")

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add a different transaction in each unit of work
	err = uow1.TransactionRepository().Add(ctx, tx1)
	suite.Require().NoError(err)

	err = uow2.TransactionRepository().Add(ctx, tx2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.TransactionRepository().Get(ctx, tx1.ID())
	suite.Require().NoError(err, "UOW1 should see tx1")

	_, err = uow1.TransactionRepository().Get(ctx, tx2.ID())
	suite.Require().Error(err, "UOW1 should not see tx2")

	_, err = uow2.TransactionRepository().Get(ctx, tx2.ID())
	suite.Require().NoError(err, "UOW2 should see tx2")

	_, err = uow2.TransactionRepository().Get(ctx, tx1.ID())
	suite.Require().Error(err, "UOW2 should not see tx1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only tx1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.TransactionRepository().Get(ctx, tx1.ID())
	suite.Require().NoError(err, "tx1 should persist after commit")

	_, err = newUow.TransactionRepository().Get(ctx, tx2.ID())
	suite.Require().Error(err, "tx2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	placeOrder := suite.createConfirmableTransaction("10006")

	// Add transaction without beginning a unit of work (should auto-commit)
	err := uow.TransactionRepository().Add(ctx, placeOrder)
	suite.Require().NoError(err)

	// Verify transaction persists immediately
	retrieved, err := uow.TransactionRepository().Get(ctx, placeOrder.ID())
	suite.Require().NoError(err)
	suite.True(placeOrder.ID().IsEqual(retrieved.ID()))

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrieved, err = newUow.TransactionRepository().Get(ctx, placeOrder.ID())
	suite.Require().NoError(err)
	suite.True(placeOrder.ID().IsEqual(retrieved.ID()))
}

// TestUnitOfWork_ExpireOverdueTransactions tests the expiry sweep workflow:
// only in-progress transactions past their deadline are picked up, and their
// expired status persists after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ExpireOverdueTransactions() {
	ctx := context.Background()
	now := time.Date(2020, 1, 15, 10, 0, 0, 0, time.UTC)

	overdue := suite.createTransactionExpiring("20001", now.Add(-time.Hour))
	current := suite.createTransactionExpiring("20002", now.Add(time.Hour))

	setupUow := suite.factory.Create()
	err := setupUow.TransactionRepository().Add(ctx, overdue)
	suite.Require().NoError(err)
	err = setupUow.TransactionRepository().Add(ctx, current)
	suite.Require().NoError(err)

	// Run the sweep within a unit of work
	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	expired, err := uow.TransactionRepository().GetAllExpired(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(expired, 1, "Only the overdue transaction should be picked up")
	suite.True(overdue.ID().IsEqual(expired[0].ID()))

	err = expired[0].Expire()
	suite.Require().NoError(err)
	err = uow.TransactionRepository().Update(ctx, expired[0])
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the expired status persisted and the sweep is idempotent
	newUow := suite.factory.Create()

	retrieved, err := newUow.TransactionRepository().Get(ctx, overdue.ID())
	suite.Require().NoError(err)
	suite.Equal(transaction.Expired, retrieved.Status())

	remaining, err := newUow.TransactionRepository().GetAllExpired(ctx, now)
	suite.Require().NoError(err)
	suite.Empty(remaining, "Expired transactions should not be picked up again")
}

// createConfirmableTransaction creates an in-progress transaction complete
// enough for order assembly: customer contact plus one completed seat
// reservation.
func (suite *UnitOfWorkIntegrationTestSuite) createConfirmableTransaction(
	confirmationNumber string,
) *transaction.PlaceOrder {
	return suite.createTransactionExpiring(confirmationNumber, time.Date(2020, 1, 16, 0, 0, 0, 0, time.UTC))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTransactionExpiring(
	confirmationNumber string,
	expires time.Time,
) *transaction.PlaceOrder {
	placeOrder, err := transaction.NewPlaceOrder(
		kernel.NewUUID(),
		transaction.Agent{ID: "customer-1", TypeOf: "Person"},
		transaction.Seller{
			TypeOf: "MovieTheater",
			ID:     "118",
			Name:   "シネマサンシャイン池袋",
			URL:    "https://example.com/theater/118",
		},
		expires,
	)
	suite.Require().NoError(err)

	name, err := kernel.NewPersonName("山田", "太郎")
	suite.Require().NoError(err)
	contact, err := transaction.NewCustomerContact(name, "09012345678", "taro@example.com")
	suite.Require().NoError(err)
	err = placeOrder.SetCustomerContact(contact)
	suite.Require().NoError(err)

	placeOrder.AddAuthorizeAction(transaction.NewSeatReservationAuthorization(
		transaction.ActionStatusCompleted,
		transaction.SeatReservationObject{
			Event: transaction.ScreeningEvent{
				Identifier: "118-20200115-001",
				Name:       kernel.NewMultilingualString("シネマ物語", "Cinema Story"),
				Venue: transaction.Venue{
					TypeOf: "MovieTheater",
					Name:   kernel.NewMultilingualString("シネマサンシャイン池袋", "Cinema Sunshine Ikebukuro"),
				},
			},
			Offers: []transaction.SeatOffer{
				{
					SeatSection: "default",
					SeatNumber:  "A-1",
					TicketName:  kernel.NewMultilingualString("一般", "Adult"),
					Price:       1800,
				},
			},
		},
		&transaction.SeatReservationResult{
			Price:              1800,
			TheaterCode:        "118",
			ConfirmationNumber: confirmationNumber,
			Seats:              []transaction.ReservedSeat{{Section: "default", Number: "A-1"}},
		},
	))

	return placeOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
