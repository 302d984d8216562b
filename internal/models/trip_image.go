package models

import (
	"time"

	"github.com/google/uuid"
)

// TripImage is an image URL record attached to a trip. Only the
// metadata lives here; file storage is handled elsewhere.
type TripImage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TripID    uuid.UUID `json:"trip_id" db:"trip_id"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
