package queries_test

import (
	"context"
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/adapters/out/postgres/notificationrepo"
	"github.com/anj1741/Routegenius-final-project/internal/adapters/out/postgres/parcelrepo"
	"github.com/anj1741/Routegenius-final-project/internal/adapters/out/postgres/trackingrepo"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/notification"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/tracking"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/clock"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding query test data
// through the write-side repositories.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// PostgresQuerySuite is the shared harness for query handler integration
// tests. Each handler suite embeds it; data is seeded through the
// write-side repositories so the queries read exactly what the commands
// would have written.
type PostgresQuerySuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *PostgresQuerySuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&trackingrepo.TrackingEventDTO{},
		&notificationrepo.NotificationDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *PostgresQuerySuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, tracking_events, notifications").Error
	suite.Require().NoError(err)
}

func (suite *PostgresQuerySuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// parcelSeed tweaks the defaults used by seedParcel.
type parcelSeed struct {
	SenderID    kernel.UUID
	RecipientID kernel.UUID
	Status      parcel.Status
	Estimated   *time.Time
	CreatedAt   time.Time
}

func (suite *PostgresQuerySuite) seedParcel(seed parcelSeed) *parcel.Parcel {
	if seed.SenderID.Validate() != nil {
		seed.SenderID = kernel.NewUUID()
	}
	if seed.RecipientID.Validate() != nil {
		seed.RecipientID = kernel.NewUUID()
	}
	if seed.Status == "" {
		seed.Status = parcel.StatusPending
	}
	if seed.CreatedAt.IsZero() {
		seed.CreatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	}

	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewTrackingID(), parcel.NewParcelParams{
		SenderID:          seed.SenderID,
		RecipientID:       seed.RecipientID,
		SenderAddress:     "1 Origin Way",
		RecipientAddress:  "9 Destination Rd",
		Description:       "Books",
		Weight:            2.5,
		DimensionsLength:  30,
		DimensionsWidth:   20,
		DimensionsHeight:  10,
		Status:            seed.Status,
		EstimatedDelivery: seed.Estimated,
		CurrentLocation:   "Warehouse 4",
		CurrentCity:       "Rotterdam",
		CurrentCountry:    "Netherlands",
	}, seed.CreatedAt)
	suite.Require().NoError(err)

	repo := parcelrepo.NewGormParcelRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), p))
	return p
}

func (suite *PostgresQuerySuite) seedEvent(parcelID kernel.UUID, status parcel.Status, description string, at time.Time) *tracking.Event {
	e, err := tracking.RestoreEvent(kernel.NewUUID(), parcelID, status, description, "Rotterdam", "Netherlands", at)
	suite.Require().NoError(err)

	repo := trackingrepo.NewGormTrackingEventRepository(suite.db, &mockAggregateTracker{}, clock.RealClock{})
	suite.Require().NoError(repo.Add(context.Background(), e))
	return e
}

func (suite *PostgresQuerySuite) seedNotification(userID kernel.UUID, message string, read bool, at time.Time) *notification.Notification {
	n, err := notification.RestoreNotification(
		kernel.NewUUID(), userID, kernel.NewUUID(), message, parcel.StatusInTransit, at, read)
	suite.Require().NoError(err)

	repo := notificationrepo.NewGormNotificationRepository(suite.db, &mockAggregateTracker{}, clock.RealClock{})
	suite.Require().NoError(repo.Add(context.Background(), n))
	return n
}
