package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle status of a published ride
type RideStatus string

const (
	RideStatusActive    RideStatus = "active"
	RideStatusCancelled RideStatus = "cancelled"
)

// Recurrence represents how often a ride repeats
type Recurrence string

const (
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Ride represents a driver-published trip offering
type Ride struct {
	ID               uuid.UUID   `json:"id" db:"id"`
	DriverID         uuid.UUID   `json:"driver_id" db:"driver_id"`
	ChurchID         uuid.UUID   `json:"church_id" db:"church_id"`
	DepartureAddress string      `json:"departure_address" db:"departure_address"`
	DepartureLat     float64     `json:"departure_lat" db:"departure_lat"`
	DepartureLng     float64     `json:"departure_lng" db:"departure_lng"`
	DepartureGeohash string      `json:"departure_geohash" db:"departure_geohash"`
	ArrivalAddress   string      `json:"arrival_address" db:"arrival_address"`
	ArrivalLat       float64     `json:"arrival_lat" db:"arrival_lat"`
	ArrivalLng       float64     `json:"arrival_lng" db:"arrival_lng"`
	ArrivalGeohash   string      `json:"arrival_geohash" db:"arrival_geohash"`
	DepartureTime    time.Time   `json:"departure_time" db:"departure_time"`
	AvailableSeats   int         `json:"available_seats" db:"available_seats"`
	Status           RideStatus  `json:"status" db:"status"`
	Price            *float64    `json:"price,omitempty" db:"price"`
	Recurrence       *Recurrence `json:"recurrence,omitempty" db:"recurrence"`
	Waypoints        []string    `json:"waypoints,omitempty" db:"-"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at" db:"updated_at"`
}

// RideCreateRequest is the payload for publishing a new ride
type RideCreateRequest struct {
	ChurchID         string      `json:"church_id"`
	DepartureAddress string      `json:"departure_address"`
	DepartureLat     float64     `json:"departure_lat"`
	DepartureLng     float64     `json:"departure_lng"`
	ArrivalAddress   string      `json:"arrival_address"`
	ArrivalLat       float64     `json:"arrival_lat"`
	ArrivalLng       float64     `json:"arrival_lng"`
	DepartureTime    time.Time   `json:"departure_time"`
	AvailableSeats   int         `json:"available_seats"`
	Price            *float64    `json:"price,omitempty"`
	Recurrence       *Recurrence `json:"recurrence,omitempty"`
	Waypoints        []string    `json:"waypoints,omitempty"`
}

// RideSearchRequest bounds a ride search
type RideSearchRequest struct {
	ChurchID  string     `json:"church_id,omitempty" query:"church_id"`
	Latitude  *float64   `json:"latitude,omitempty" query:"latitude"`
	Longitude *float64   `json:"longitude,omitempty" query:"longitude"`
	RadiusKm  float64    `json:"radius_km,omitempty" query:"radius_km"`
	From      *time.Time `json:"from,omitempty" query:"from"`
	To        *time.Time `json:"to,omitempty" query:"to"`
}

// RideSeatsUpdateRequest overrides a ride's available seats.
// This bypasses the seat ledger and is intended for driver edits only.
type RideSeatsUpdateRequest struct {
	AvailableSeats int `json:"available_seats"`
}

// RideCancelledEvent is published when a driver cancels a ride
type RideCancelledEvent struct {
	RideID      string    `json:"ride_id"`
	DriverID    string    `json:"driver_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}
