package core

import (
	"context"
	"time"

	"github.com/google/uuid"

	"TRIPVANA_BACK-END/internal/models"
)

// TripFilter narrows the public trip catalog.
type TripFilter struct {
	Destination   string
	MinPrice      *int
	MaxPrice      *int
	StartDateFrom *time.Time
	Limit         int
	Offset        int
}

// BookingFilter narrows organizer booking listings.
type BookingFilter struct {
	Status models.BookingStatus // empty = all statuses
	Limit  int
	Offset int
}

// Store is the storage dependency injected into the core services.
// Implementations return tagged core errors (KindNotFound on missing
// rows, KindConflict on commit-time integrity violations) and hand the
// core only canonical booking statuses.
type Store interface {
	GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	GetActiveTripBySlug(ctx context.Context, slug string) (*models.Trip, error)
	CreateTrip(ctx context.Context, trip *models.Trip) error
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	ListPublicTrips(ctx context.Context, filter TripFilter) ([]models.Trip, error)
	ListOrganizerTrips(ctx context.Context, organizerID uuid.UUID, limit, offset int) ([]models.Trip, error)

	GetOrganizerByID(ctx context.Context, id uuid.UUID) (*models.Organizer, error)

	AddTripImage(ctx context.Context, image *models.TripImage) error
	ListTripImages(ctx context.Context, tripID uuid.UUID) ([]models.TripImage, error)
	DeleteTripImage(ctx context.Context, tripID, imageID uuid.UUID) error
	CountTripImages(ctx context.Context, tripID uuid.UUID) (int, error)

	// SumBookedSeats aggregates seats_booked over the trip's bookings in
	// a seat-consuming state. The result may be stale the instant after
	// return; the approval path must recheck through Tx instead.
	SumBookedSeats(ctx context.Context, tripID uuid.UUID) (int, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	HasPendingBooking(ctx context.Context, tripID, userID uuid.UUID) (bool, error)
	ListOrganizerBookings(ctx context.Context, organizerID uuid.UUID, filter BookingFilter) ([]models.Booking, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Booking, error)
	LatestUserBookingForTrip(ctx context.Context, userID, tripID uuid.UUID) (*models.Booking, error)

	// InTx runs fn inside a single storage transaction. If fn returns an
	// error the transaction rolls back and no partial state change is
	// observable; otherwise it commits.
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the transactional view used by the approval path.
type Tx interface {
	// GetBookingForUpdate loads a booking under an exclusive row lock,
	// serializing concurrent approval attempts for the same booking
	// until the transaction ends.
	GetBookingForUpdate(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	SumBookedSeats(ctx context.Context, tripID uuid.UUID) (int, error)
	SetBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error
}

// Cache is an optional read-side cache for catalog and availability
// queries. Implementations must be safe for concurrent use; a nil
// Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Del(ctx context.Context, keys ...string)
}
