package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleDriver    = "driver"
	RolePassenger = "passenger"
)

// User represents a registered church member (driver or passenger)
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	FullName     string    `json:"full_name" db:"full_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	ChurchID     uuid.UUID `json:"church_id" db:"church_id"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	Vehicle      *Vehicle  `json:"vehicle,omitempty" db:"-"`
}

// Vehicle holds a driver's registered vehicle. Seats bounds the
// capacity of any ride the driver publishes.
type Vehicle struct {
	UserID uuid.UUID `json:"user_id" db:"user_id"`
	Model  string    `json:"model" db:"model"`
	Plate  string    `json:"plate" db:"plate"`
	Seats  int       `json:"seats" db:"seats"`
}

// Church represents a community rides are organized around
type Church struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RegisterRequest is the payload for creating an account
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	ChurchID string `json:"church_id"`
}

// LoginRequest is the payload for authenticating
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token and its expiry
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}

// VehicleRequest registers or replaces the driver's vehicle
type VehicleRequest struct {
	Model string `json:"model"`
	Plate string `json:"plate"`
	Seats int    `json:"seats"`
}
