// Package userrepo implements the UserDirectory port against the users
// table. The directory is read-only from this service's point of view:
// account management lives elsewhere, parcels only reference users and
// notifications need their email address.
package userrepo

import (
	"context"
	"errors"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/ports"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents a row of the users table.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
	Email     string `gorm:"uniqueIndex"`
	Role      string `gorm:"type:varchar(20)"`
}

// TableName specifies the database table name for user accounts.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserDirectory implements the UserDirectory port using GORM.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a user directory over the given connection.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// Exists reports whether a user with the given ID is registered.
func (d *GormUserDirectory) Exists(ctx context.Context, userID kernel.UUID) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := d.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", userID.Bytes()).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetContact retrieves the contact details for a user.
func (d *GormUserDirectory) GetContact(ctx context.Context, userID kernel.UUID) (ports.UserContact, error) {
	if err := userID.Validate(); err != nil {
		return ports.UserContact{}, err
	}

	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UserContact{}, errs.NewObjectNotFoundError("user", userID.String())
		}
		return ports.UserContact{}, err
	}

	return ports.UserContact{Email: dto.Email}, nil
}
