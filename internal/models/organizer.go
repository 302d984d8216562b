package models

import (
	"time"

	"github.com/google/uuid"
)

// Organizer is the trip-owning party.
type Organizer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Website   string    `json:"website" db:"website"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// EndUser is a trip-booking requester. End users live in a separate
// identity space from organizers.
type EndUser struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
