package dto

import "encoding/json"

// CreateTripRequest represents the payload to create a trip
type CreateTripRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Destination   string          `json:"destination"`
	Price         int             `json:"price"` // smallest currency unit
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalSeats    int             `json:"total_seats"`
	Tags          []string        `json:"tags"`
	CoverImageURL string          `json:"cover_image_url"`
	Itinerary     json.RawMessage `json:"itinerary"`
}

// UpdateTripRequest represents fields allowed to update a trip.
// All fields are optional; only provided ones will be updated.
// Status is deliberately absent: lifecycle moves go through the
// transition endpoints.
type UpdateTripRequest struct {
	Title         *string         `json:"title"`
	Description   *string         `json:"description"`
	Destination   *string         `json:"destination"`
	Price         *int            `json:"price"`
	StartDate     *string         `json:"start_date"`
	EndDate       *string         `json:"end_date"`
	TotalSeats    *int            `json:"total_seats"`
	Tags          *[]string       `json:"tags"`
	CoverImageURL *string         `json:"cover_image_url"`
	Itinerary     json.RawMessage `json:"itinerary"`
}

// TripResponse represents a trip object in responses
type TripResponse struct {
	ID            string          `json:"id"`
	OrganizerID   string          `json:"organizer_id"`
	Slug          string          `json:"slug"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Destination   string          `json:"destination"`
	Price         int             `json:"price"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalSeats    int             `json:"total_seats"`
	Status        string          `json:"status"`
	Tags          []string        `json:"tags"`
	CoverImageURL string          `json:"cover_image_url"`
	Itinerary     json.RawMessage `json:"itinerary,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

// TripListResponse envelope
type TripListResponse struct {
	Trips  []TripResponse `json:"trips"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// AvailabilityResponse is the seat ledger readout for one trip
type AvailabilityResponse struct {
	TripID         string `json:"trip_id"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}

// AddTripImageRequest attaches an image URL to a trip
type AddTripImageRequest struct {
	ImageURL string `json:"image_url"`
	Position int    `json:"position"`
}

// TripImageResponse represents one trip image record
type TripImageResponse struct {
	ID       string `json:"id"`
	TripID   string `json:"trip_id"`
	ImageURL string `json:"image_url"`
	Position int    `json:"position"`
}

// TripImageListResponse envelope
type TripImageListResponse struct {
	Images []TripImageResponse `json:"images"`
}
