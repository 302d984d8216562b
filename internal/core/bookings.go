package core

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"TRIPVANA_BACK-END/internal/models"
)

const defaultCurrency = "INR"

// BookingService owns the booking lifecycle: admission control for new
// requests, offline organizer-entered bookings, and the atomic
// approve/reject transaction.
type BookingService struct {
	store Store
	cache Cache
	now   func() time.Time
}

// NewBookingService creates a BookingService. cache may be nil.
func NewBookingService(store Store, cache Cache) *BookingService {
	return &BookingService{store: store, cache: cache, now: time.Now}
}

// SubmitBookingInput is an end user's booking request payload.
type SubmitBookingInput struct {
	TripID         uuid.UUID
	NumTravelers   int
	Travelers      []models.Traveler
	ContactName    string
	ContactPhone   string
	ContactEmail   string
	PricePerPerson int
	TotalPrice     int
	Currency       string
}

// SubmitRequest validates a booking request and creates it PENDING.
// Checks run in order and the first failure wins; nothing is written
// until every check passes. Seats are not reserved here: capacity is
// enforced when the organizer approves, so a PENDING request never
// blocks other requesters.
func (s *BookingService) SubmitRequest(ctx context.Context, userID uuid.UUID, userEmail string, input SubmitBookingInput) (*models.Booking, error) {
	trip, err := s.store.GetTripByID(ctx, input.TripID)
	if err != nil {
		return nil, err
	}
	if !trip.IsActive {
		return nil, Errorf(KindNotFound, "trip not found")
	}

	now := s.now()
	if trip.Status != models.TripStatusPublished {
		return nil, Errorf(KindInvalidState, "trip is not open for booking")
	}
	if !now.Before(trip.StartDate) {
		return nil, Errorf(KindInvalidState, "bookings are closed for this trip")
	}

	organizer, err := s.store.GetOrganizerByID(ctx, trip.OrganizerID)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(organizer.Email, userEmail) {
		return nil, Errorf(KindPermissionDenied, "organizers cannot book their own trip")
	}

	if input.NumTravelers <= 0 {
		return nil, Errorf(KindValidation, "num_travelers must be positive")
	}
	if len(input.Travelers) != input.NumTravelers {
		return nil, Errorf(KindValidation, "traveler details count does not match num_travelers")
	}
	if input.PricePerPerson != trip.Price {
		return nil, Errorf(KindValidation, "price_per_person does not match the current trip price")
	}
	if input.TotalPrice != input.PricePerPerson*input.NumTravelers {
		return nil, Errorf(KindValidation, "total_price does not match price_per_person * num_travelers")
	}

	pending, err := s.store.HasPendingBooking(ctx, trip.ID, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, Errorf(KindDuplicateRequest, "you already have a pending request for this trip")
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	booking := &models.Booking{
		ID:              uuid.New(),
		TripID:          trip.ID,
		UserID:          &userID,
		SeatsBooked:     input.NumTravelers,
		Source:          models.BookingSourceUser,
		Status:          models.BookingStatusPending,
		NumTravelers:    input.NumTravelers,
		TravelerDetails: input.Travelers,
		ContactName:     input.ContactName,
		ContactPhone:    input.ContactPhone,
		ContactEmail:    input.ContactEmail,
		PricePerPerson:  input.PricePerPerson,
		TotalPrice:      input.TotalPrice,
		Currency:        currency,
		CreatedAt:       now,
	}
	if err := s.store.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// AddOfflineBooking records an organizer-entered booking that consumes
// seats immediately, bypassing the request flow.
func (s *BookingService) AddOfflineBooking(ctx context.Context, organizerID, tripID uuid.UUID, seats int) (*models.Booking, error) {
	if seats <= 0 {
		return nil, Errorf(KindValidation, "seats must be positive")
	}

	trip, err := s.store.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.IsActive {
		return nil, Errorf(KindNotFound, "trip not found")
	}
	if trip.OrganizerID != organizerID {
		return nil, Errorf(KindPermissionDenied, "you do not own this trip")
	}

	booked, err := s.store.SumBookedSeats(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if seats > trip.TotalSeats-booked {
		return nil, Errorf(KindInsufficientCapacity, "not enough seats available")
	}

	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      trip.ID,
		SeatsBooked: seats,
		Source:      models.BookingSourceOffline,
		Status:      models.BookingStatusApproved,
		Currency:    defaultCurrency,
		CreatedAt:   s.now(),
	}
	if err := s.store.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	s.invalidateAvailability(ctx, trip.ID)
	return booking, nil
}

// Approve transitions a PENDING booking to APPROVED inside a single
// transaction. The booking row is locked first, then seat availability
// is recomputed within the locked scope, so two concurrent approvals
// whose combined seats exceed capacity can never both commit.
func (s *BookingService) Approve(ctx context.Context, organizerID, bookingID uuid.UUID) (*models.Booking, error) {
	var approved *models.Booking
	err := s.store.InTx(ctx, func(tx Tx) error {
		booking, trip, err := lockBookingWithTrip(ctx, tx, bookingID, organizerID)
		if err != nil {
			return err
		}

		switch booking.Status {
		case models.BookingStatusApproved:
			return Errorf(KindInvalidTransition, "booking is already approved")
		case models.BookingStatusRejected:
			return Errorf(KindInvalidTransition, "cannot approve a rejected booking")
		case models.BookingStatusPending:
		default:
			return Errorf(KindInvalidTransition, "cannot approve booking with status %s", booking.Status)
		}

		booked, err := tx.SumBookedSeats(ctx, trip.ID)
		if err != nil {
			return err
		}
		available := trip.TotalSeats - booked
		requested := booking.RequestedSeats()
		if requested > available {
			return Errorf(KindInsufficientCapacity, "not enough seats available: %d available, %d requested", available, requested)
		}

		if err := tx.SetBookingStatus(ctx, booking.ID, models.BookingStatusApproved); err != nil {
			return err
		}
		booking.Status = models.BookingStatusApproved
		approved = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidateAvailability(ctx, approved.TripID)
	return approved, nil
}

// Reject transitions a PENDING booking to REJECTED. No capacity check:
// rejection only ever frees intent, never consumes seats.
func (s *BookingService) Reject(ctx context.Context, organizerID, bookingID uuid.UUID) (*models.Booking, error) {
	var rejected *models.Booking
	err := s.store.InTx(ctx, func(tx Tx) error {
		booking, _, err := lockBookingWithTrip(ctx, tx, bookingID, organizerID)
		if err != nil {
			return err
		}

		switch booking.Status {
		case models.BookingStatusRejected:
			return Errorf(KindInvalidTransition, "booking is already rejected")
		case models.BookingStatusApproved:
			return Errorf(KindInvalidTransition, "cannot reject an approved booking")
		case models.BookingStatusPending:
		default:
			return Errorf(KindInvalidTransition, "cannot reject booking with status %s", booking.Status)
		}

		if err := tx.SetBookingStatus(ctx, booking.ID, models.BookingStatusRejected); err != nil {
			return err
		}
		booking.Status = models.BookingStatusRejected
		rejected = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}

// ListForOrganizer lists bookings across the organizer's trips.
func (s *BookingService) ListForOrganizer(ctx context.Context, organizerID uuid.UUID, filter BookingFilter) ([]models.Booking, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.store.ListOrganizerBookings(ctx, organizerID, filter)
}

// ListForUser lists the user's own bookings, newest first.
func (s *BookingService) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.ListUserBookings(ctx, userID, limit, offset)
}

// GetForUser returns one booking, restricted to its owner.
func (s *BookingService) GetForUser(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := s.store.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID == nil || *booking.UserID != userID {
		return nil, Errorf(KindPermissionDenied, "you do not have permission to view this booking")
	}
	return booking, nil
}

// UserBookingForTrip returns the user's most recent booking on a trip,
// or a NotFound error when none exists.
func (s *BookingService) UserBookingForTrip(ctx context.Context, userID, tripID uuid.UUID) (*models.Booking, error) {
	return s.store.LatestUserBookingForTrip(ctx, userID, tripID)
}

// lockBookingWithTrip loads the booking under an exclusive lock, loads
// its trip, and verifies organizer ownership.
func lockBookingWithTrip(ctx context.Context, tx Tx, bookingID, organizerID uuid.UUID) (*models.Booking, *models.Trip, error) {
	booking, err := tx.GetBookingForUpdate(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	trip, err := tx.GetTripByID(ctx, booking.TripID)
	if err != nil {
		return nil, nil, err
	}
	if trip.OrganizerID != organizerID {
		return nil, nil, Errorf(KindPermissionDenied, "you do not have permission to manage this booking")
	}
	return booking, trip, nil
}

func (s *BookingService) invalidateAvailability(ctx context.Context, tripID uuid.UUID) {
	if s.cache != nil {
		s.cache.Del(ctx, availabilityKey(tripID))
	}
}
