package notificationrepo

import (
	"context"
	"errors"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/notification"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/clock"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	clk     clock.Clock
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNotificationRepository creates a new GORM notification repository.
// The clock assigns notification timestamps at insertion time.
func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker, clk clock.Clock) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
		clk:     clk,
	}
}

// Add saves a new notification. Notifications constructed without a
// timestamp get the current clock reading.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if dto.Timestamp.IsZero() {
		dto.Timestamp = r.clk.Now()
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing notification, carrying the read flag.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", dto.ID).
		Select("Message", "RelatedStatus", "IsRead").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a notification by ID.
func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserOrderedByTimeDesc retrieves all notifications for a user,
// newest first.
func (r *GormNotificationRepository) GetByUserOrderedByTimeDesc(ctx context.Context, userID kernel.UUID) ([]*notification.Notification, error) {
	return r.getByUser(ctx, userID, false)
}

// GetUnreadByUser retrieves the unread notifications for a user, newest
// first.
func (r *GormNotificationRepository) GetUnreadByUser(ctx context.Context, userID kernel.UUID) ([]*notification.Notification, error) {
	return r.getByUser(ctx, userID, true)
}

func (r *GormNotificationRepository) getByUser(ctx context.Context, userID kernel.UUID, unreadOnly bool) ([]*notification.Notification, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Where("user_id = ?", userID.Bytes())
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var dtos []NotificationDTO
	if err := q.Order("timestamp DESC, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// Delete removes a notification from the database.
func (r *GormNotificationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&NotificationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}

	return nil
}
