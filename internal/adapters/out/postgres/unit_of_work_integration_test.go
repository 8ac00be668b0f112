package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "github.com/anj1741/Routegenius-final-project/internal/adapters/out/postgres"
	"github.com/anj1741/Routegenius-final-project/internal/adapters/out/postgres/notificationrepo"
	"github.com/anj1741/Routegenius-final-project/internal/adapters/out/postgres/parcelrepo"
	"github.com/anj1741/Routegenius-final-project/internal/adapters/out/postgres/trackingrepo"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/tracking"
	"github.com/anj1741/Routegenius-final-project/internal/core/ports"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/clock"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection
// for all tests and runs the schema migrations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&trackingrepo.TrackingEventDTO{},
		&notificationrepo.NotificationDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, clock.RealClock{})
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, tracking_events, notifications").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit
// of work instances with working repository accessors.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ParcelRepository())
	suite.NotNil(uow1.TrackingEventRepository())
	suite.NotNil(uow1.NotificationRepository())
	suite.NotNil(uow2.ParcelRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated begin on an open transaction is a no-op.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_TransactionErrors verifies error handling for commit and
// rollback without an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)

	err = uow.Rollback(ctx)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_CommitPersistsAcrossRepositories verifies that a parcel
// and its seed tracking event written in one transaction are both visible
// after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := suite.createTestParcel()
	event, err := tracking.NewEvent(kernel.NewUUID(), testParcel.ID(), testParcel.Status(),
		"Parcel created at Warehouse 4, Rotterdam", "Rotterdam", "Netherlands")
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))
	suite.Require().NoError(uow.TrackingEventRepository().Add(ctx, event))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loaded, err := verify.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(testParcel))

	history, err := verify.TrackingEventRepository().GetByParcelOrderedByTime(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.False(history[0].Timestamp().IsZero(), "Store should assign the event timestamp")
}

// TestUnitOfWork_RollbackDiscardsChanges verifies that writes in a rolled
// back transaction leave no rows behind.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := suite.createTestParcel()
	event, err := tracking.NewEvent(kernel.NewUUID(), testParcel.ID(), testParcel.Status(),
		"Parcel created at Warehouse 4, Rotterdam", "Rotterdam", "Netherlands")
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))
	suite.Require().NoError(uow.TrackingEventRepository().Add(ctx, event))
	suite.Require().NoError(uow.Rollback(ctx))

	var parcelCount, eventCount int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&parcelCount).Error)
	suite.Require().NoError(suite.db.Model(&trackingrepo.TrackingEventDTO{}).Count(&eventCount).Error)
	suite.EqualValues(0, parcelCount)
	suite.EqualValues(0, eventCount)
}

// TestUnitOfWork_RepositoriesWithoutTransaction verifies repositories fall
// back to the main connection when no transaction is open.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoriesWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := suite.createTestParcel()
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))

	loaded, err := suite.factory.Create().ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(testParcel))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewTrackingID(), parcel.NewParcelParams{
		SenderID:         kernel.NewUUID(),
		RecipientID:      kernel.NewUUID(),
		Description:      "Books",
		Weight:           2.5,
		DimensionsLength: 30,
		DimensionsWidth:  20,
		DimensionsHeight: 10,
		CurrentLocation:  "Warehouse 4",
		CurrentCity:      "Rotterdam",
		CurrentCountry:   "Netherlands",
	}, created)
	suite.Require().NoError(err)
	return p
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
