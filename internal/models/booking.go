package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking request.
// PENDING is the initial state; APPROVED and REJECTED are terminal.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "PENDING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// Booking sources.
const (
	BookingSourceUser    = "user"
	BookingSourceOffline = "offline"
)

// NormalizeBookingStatus maps raw stored status values to the canonical
// enum. Legacy organizer-entered rows carry "confirmed", which consumes
// a seat exactly like APPROVED. Everything past the storage boundary
// only ever sees canonical values.
func NormalizeBookingStatus(raw string) BookingStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CONFIRMED", "APPROVED":
		return BookingStatusApproved
	case "REJECTED":
		return BookingStatusRejected
	default:
		return BookingStatusPending
	}
}

// Terminal reports whether the status permits no further transition.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusApproved || s == BookingStatusRejected
}

// Traveler is one traveler on a booking request.
type Traveler struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Profession string `json:"profession"`
}

// Booking represents a seat reservation request against a trip.
// UserID is nil for offline bookings entered by the organizer.
type Booking struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	TripID          uuid.UUID     `json:"trip_id" db:"trip_id"`
	UserID          *uuid.UUID    `json:"user_id" db:"user_id"`
	SeatsBooked     int           `json:"seats_booked" db:"seats_booked"`
	Source          string        `json:"source" db:"source"`
	Status          BookingStatus `json:"status" db:"status"`
	NumTravelers    int           `json:"num_travelers" db:"num_travelers"`
	TravelerDetails []Traveler    `json:"traveler_details" db:"traveler_details"`
	ContactName     string        `json:"contact_name" db:"contact_name"`
	ContactPhone    string        `json:"contact_phone" db:"contact_phone"`
	ContactEmail    string        `json:"contact_email" db:"contact_email"`
	PricePerPerson  int           `json:"price_per_person" db:"price_per_person"`
	TotalPrice      int           `json:"total_price" db:"total_price"`
	Currency        string        `json:"currency" db:"currency"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
}

// RequestedSeats returns the seat count this booking asks for.
// Legacy rows lack traveler details, so seats_booked is the fallback.
func (b *Booking) RequestedSeats() int {
	if b.NumTravelers > 0 {
		return b.NumTravelers
	}
	return b.SeatsBooked
}
