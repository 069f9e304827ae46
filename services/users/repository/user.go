package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
)

// pgUniqueViolation is the PostgreSQL error code for a unique
// constraint violation.
const pgUniqueViolation = "23505"

// UserRepo implements users.UserRepo against PostgreSQL
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateUser inserts a new account. The unique index on email turns
// concurrent duplicate registrations into models.ErrEmailTaken.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, full_name, password_hash, role, church_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.FullName, user.PasswordHash, user.Role,
		user.ChurchID, user.IsActive, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("email %s: %w", user.Email, models.ErrEmailTaken)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `SELECT id, email, full_name, password_hash, role, church_id, is_active, created_at, updated_at
		FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s: %w", userID, models.ErrUserNotFound)
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email for authentication
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, full_name, password_hash, role, church_id, is_active, created_at, updated_at
		FROM users WHERE email = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("email %s: %w", email, models.ErrUserNotFound)
		}
		return nil, err
	}

	return &user, nil
}

// UpsertVehicle registers or replaces the driver's single vehicle
func (r *UserRepo) UpsertVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vehicles (user_id, model, plate, seats)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET model = EXCLUDED.model, plate = EXCLUDED.plate, seats = EXCLUDED.seats`,
		vehicle.UserID, vehicle.Model, vehicle.Plate, vehicle.Seats)
	if err != nil {
		return fmt.Errorf("failed to upsert vehicle: %w", err)
	}

	return nil
}

// GetVehicle retrieves the vehicle registered by a driver
func (r *UserRepo) GetVehicle(ctx context.Context, userID string) (*models.Vehicle, error) {
	query := `SELECT user_id, model, plate, seats FROM vehicles WHERE user_id = $1`

	var vehicle models.Vehicle
	if err := r.db.GetContext(ctx, &vehicle, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("vehicle for user %s: %w", userID, models.ErrUserNotFound)
		}
		return nil, err
	}

	return &vehicle, nil
}

// ListChurches retrieves all churches ordered by name
func (r *UserRepo) ListChurches(ctx context.Context) ([]*models.Church, error) {
	query := `SELECT id, name, address, latitude, longitude, created_at FROM churches ORDER BY name ASC`

	var result []*models.Church
	if err := r.db.SelectContext(ctx, &result, query); err != nil {
		return nil, err
	}

	return result, nil
}

// GetChurchByID retrieves a church by ID
func (r *UserRepo) GetChurchByID(ctx context.Context, churchID string) (*models.Church, error) {
	query := `SELECT id, name, address, latitude, longitude, created_at FROM churches WHERE id = $1`

	var church models.Church
	if err := r.db.GetContext(ctx, &church, query, churchID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("church %s not found", churchID)
		}
		return nil, err
	}

	return &church, nil
}
