package users

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/models"
)

// UserRepo defines the interface for user, vehicle and church data
// access operations.
type UserRepo interface {
	// CreateUser inserts a new account. Returns models.ErrEmailTaken
	// when the email is already registered.
	CreateUser(ctx context.Context, user *models.User) error

	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// UpsertVehicle registers or replaces the driver's single vehicle
	UpsertVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicle(ctx context.Context, userID string) (*models.Vehicle, error)

	ListChurches(ctx context.Context) ([]*models.Church, error)
	GetChurchByID(ctx context.Context, churchID string) (*models.Church, error)
}
