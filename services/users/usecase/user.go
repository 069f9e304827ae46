package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	jwtpkg "github.com/churchpool/churchpool/internal/pkg/jwt"
	"github.com/churchpool/churchpool/internal/pkg/logger"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/users"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserUC implements the account and profile business logic
type UserUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new user usecase
func NewUserUC(cfg *models.Config, userRepo users.UserRepo) *UserUC {
	return &UserUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Register creates an account and signs the new member in
func (uc *UserUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || req.FullName == "" {
		return nil, fmt.Errorf("email, full name and password are required")
	}
	if req.Role != models.RoleDriver && req.Role != models.RolePassenger {
		return nil, fmt.Errorf("role must be %s or %s", models.RoleDriver, models.RolePassenger)
	}

	churchID, err := uuid.Parse(req.ChurchID)
	if err != nil {
		return nil, fmt.Errorf("invalid church ID: %w", err)
	}
	if _, err := uc.userRepo.GetChurchByID(ctx, churchID.String()); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := models.Now()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         req.Role,
		ChurchID:     churchID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role))

	return uc.issueToken(user)
}

// Login authenticates by email and password
func (uc *UserUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	return uc.issueToken(user)
}

// GetProfile returns the member's profile with their vehicle, if any
func (uc *UserUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID.String())
	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleDriver {
		if vehicle, err := uc.userRepo.GetVehicle(ctx, userID.String()); err == nil {
			user.Vehicle = vehicle
		}
	}

	return user, nil
}

// RegisterVehicle sets the driver's vehicle, replacing any previous one
func (uc *UserUC) RegisterVehicle(ctx context.Context, userID uuid.UUID, req models.VehicleRequest) (*models.Vehicle, error) {
	if req.Seats < 1 {
		return nil, fmt.Errorf("vehicle must have at least one passenger seat")
	}
	if req.Model == "" || req.Plate == "" {
		return nil, fmt.Errorf("vehicle model and plate are required")
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleDriver {
		return nil, fmt.Errorf("only drivers can register a vehicle")
	}

	vehicle := &models.Vehicle{
		UserID: userID,
		Model:  req.Model,
		Plate:  req.Plate,
		Seats:  req.Seats,
	}

	if err := uc.userRepo.UpsertVehicle(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// ListChurches retrieves all churches
func (uc *UserUC) ListChurches(ctx context.Context) ([]*models.Church, error) {
	return uc.userRepo.ListChurches(ctx)
}

func (uc *UserUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	user.PasswordHash = ""

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
