package dto

// Traveler is one traveler on a booking request
type Traveler struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Profession string `json:"profession"`
}

// SubmitBookingRequest is an end user's booking request payload
type SubmitBookingRequest struct {
	TripID         string     `json:"trip_id"`
	NumTravelers   int        `json:"num_travelers"`
	Travelers      []Traveler `json:"traveler_details"`
	ContactName    string     `json:"contact_name"`
	ContactPhone   string     `json:"contact_phone"`
	ContactEmail   string     `json:"contact_email"`
	PricePerPerson int        `json:"price_per_person"`
	TotalPrice     int        `json:"total_price"`
	Currency       string     `json:"currency"`
}

// OfflineBookingRequest records an organizer-entered booking
type OfflineBookingRequest struct {
	Seats int `json:"seats"`
}

// BookingResponse represents a booking in responses
type BookingResponse struct {
	ID             string     `json:"id"`
	TripID         string     `json:"trip_id"`
	UserID         *string    `json:"user_id"`
	SeatsBooked    int        `json:"seats_booked"`
	Source         string     `json:"source"`
	Status         string     `json:"status"`
	NumTravelers   int        `json:"num_travelers,omitempty"`
	Travelers      []Traveler `json:"traveler_details,omitempty"`
	ContactName    string     `json:"contact_name,omitempty"`
	ContactPhone   string     `json:"contact_phone,omitempty"`
	ContactEmail   string     `json:"contact_email,omitempty"`
	PricePerPerson int        `json:"price_per_person,omitempty"`
	TotalPrice     int        `json:"total_price,omitempty"`
	Currency       string     `json:"currency,omitempty"`
	CreatedAt      string     `json:"created_at"`
}

// BookingListResponse envelope
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
