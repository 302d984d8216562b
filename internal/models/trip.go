package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a trip.
type TripStatus string

const (
	TripStatusDraft     TripStatus = "DRAFT"
	TripStatusPublished TripStatus = "PUBLISHED"
	TripStatusArchived  TripStatus = "ARCHIVED"
)

// Valid reports whether s is one of the known lifecycle states.
func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusDraft, TripStatusPublished, TripStatusArchived:
		return true
	}
	return false
}

// Trip represents a trip published by an organizer.
// Price is in the smallest currency unit.
type Trip struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	OrganizerID   uuid.UUID       `json:"organizer_id" db:"organizer_id"`
	Slug          string          `json:"slug" db:"slug"`
	Title         string          `json:"title" db:"title"`
	Description   string          `json:"description" db:"description"`
	Destination   string          `json:"destination" db:"destination"`
	Price         int             `json:"price" db:"price"`
	StartDate     time.Time       `json:"start_date" db:"start_date"`
	EndDate       time.Time       `json:"end_date" db:"end_date"`
	TotalSeats    int             `json:"total_seats" db:"total_seats"`
	Status        TripStatus      `json:"status" db:"status"`
	Tags          []string        `json:"tags" db:"tags"`
	CoverImageURL string          `json:"cover_image_url" db:"cover_image_url"`
	Itinerary     json.RawMessage `json:"itinerary" db:"itinerary"`
	IsActive      bool            `json:"is_active" db:"is_active"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// OpenForBooking reports whether the trip accepts new booking requests
// at the given moment: published, not soft-deleted, and not yet started.
func (t *Trip) OpenForBooking(now time.Time) bool {
	return t.Status == TripStatusPublished && t.IsActive && now.Before(t.StartDate)
}
