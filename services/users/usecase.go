package users

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/churchpool/churchpool/services/users UserUC

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/google/uuid"
)

// UserUC defines the account and profile business logic
type UserUC interface {
	// Register creates an account and signs the new member in
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)

	// Login authenticates by email and password
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)

	// GetProfile returns the member's profile with their vehicle, if any
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// RegisterVehicle sets the driver's vehicle, replacing any previous one
	RegisterVehicle(ctx context.Context, userID uuid.UUID, req models.VehicleRequest) (*models.Vehicle, error)

	ListChurches(ctx context.Context) ([]*models.Church, error)
}
