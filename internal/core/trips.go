package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"TRIPVANA_BACK-END/internal/models"
)

const (
	availabilityTTL = 10 * time.Second
	catalogTTL      = 30 * time.Second

	slugRetries = 3
)

// TripService owns the trip lifecycle: creation, DRAFT-only edits, the
// DRAFT -> PUBLISHED -> ARCHIVED -> DRAFT state machine, image
// metadata, and the seat ledger.
type TripService struct {
	store Store
	cache Cache
	now   func() time.Time
}

// NewTripService creates a TripService. cache may be nil.
func NewTripService(store Store, cache Cache) *TripService {
	return &TripService{store: store, cache: cache, now: time.Now}
}

// CreateTripInput is the payload for creating a trip.
type CreateTripInput struct {
	Title         string
	Description   string
	Destination   string
	Price         int
	StartDate     time.Time
	EndDate       time.Time
	TotalSeats    int
	Tags          []string
	CoverImageURL string
	Itinerary     []byte
}

// UpdateTripInput carries optional field updates; nil fields keep the
// current value.
type UpdateTripInput struct {
	Title         *string
	Description   *string
	Destination   *string
	Price         *int
	StartDate     *time.Time
	EndDate       *time.Time
	TotalSeats    *int
	Tags          *[]string
	CoverImageURL *string
	Itinerary     []byte
}

// CreateTrip creates a DRAFT trip for the organizer. The slug derives
// from title, destination and start date; on a uniqueness conflict the
// slug is regenerated with a random suffix and the insert retried.
func (s *TripService) CreateTrip(ctx context.Context, organizerID uuid.UUID, input CreateTripInput) (*models.Trip, error) {
	title := strings.TrimSpace(input.Title)
	destination := strings.TrimSpace(input.Destination)
	if title == "" || destination == "" {
		return nil, Errorf(KindValidation, "title and destination are required")
	}
	if input.Price <= 0 {
		return nil, Errorf(KindValidation, "price must be positive")
	}
	if input.TotalSeats <= 0 {
		return nil, Errorf(KindValidation, "total_seats must be positive")
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, Errorf(KindValidation, "start_date and end_date are required")
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, Errorf(KindValidation, "end_date cannot be before start_date")
	}

	now := s.now()
	slugBase := slugify(fmt.Sprintf("%s-%s-%s", title, destination, input.StartDate.Format("2006-01-02")))
	trip := &models.Trip{
		ID:            uuid.New(),
		OrganizerID:   organizerID,
		Slug:          slugBase,
		Title:         title,
		Description:   input.Description,
		Destination:   destination,
		Price:         input.Price,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		TotalSeats:    input.TotalSeats,
		Status:        models.TripStatusDraft,
		Tags:          input.Tags,
		CoverImageURL: input.CoverImageURL,
		Itinerary:     input.Itinerary,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	backoff := retry.WithMaxRetries(slugRetries, retry.NewConstant(10*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.store.CreateTrip(ctx, trip); err != nil {
			if IsKind(err, KindConflict) {
				trip.Slug = slugBase + "-" + randomSuffix(4)
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// GetBySlug returns an active trip by its slug.
func (s *TripService) GetBySlug(ctx context.Context, slug string) (*models.Trip, error) {
	return s.store.GetActiveTripBySlug(ctx, slug)
}

// ListPublic lists active trips for the public catalog. Results are
// cached briefly; staleness here is acceptable because nothing in the
// catalog path mutates state.
func (s *TripService) ListPublic(ctx context.Context, filter TripFilter) ([]models.Trip, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	key := catalogKey(filter)
	if s.cache != nil {
		var cached []models.Trip
		if s.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
	}

	trips, err := s.store.ListPublicTrips(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, trips, catalogTTL)
	}
	return trips, nil
}

// ListForOrganizer lists the organizer's own trips, newest first.
func (s *TripService) ListForOrganizer(ctx context.Context, organizerID uuid.UUID, limit, offset int) ([]models.Trip, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.ListOrganizerTrips(ctx, organizerID, limit, offset)
}

// UpdateTrip edits trip fields. Only DRAFT trips may be edited, and
// total_seats can never drop below the already booked seat count.
func (s *TripService) UpdateTrip(ctx context.Context, organizerID, tripID uuid.UUID, input UpdateTripInput) (*models.Trip, error) {
	trip, err := s.ownedTrip(ctx, organizerID, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusDraft {
		return nil, Errorf(KindInvalidState, "only DRAFT trips can be edited")
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, Errorf(KindValidation, "title cannot be empty")
		}
		trip.Title = title
	}
	if input.Description != nil {
		trip.Description = *input.Description
	}
	if input.Destination != nil {
		destination := strings.TrimSpace(*input.Destination)
		if destination == "" {
			return nil, Errorf(KindValidation, "destination cannot be empty")
		}
		trip.Destination = destination
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, Errorf(KindValidation, "price must be positive")
		}
		trip.Price = *input.Price
	}
	if input.StartDate != nil {
		trip.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		trip.EndDate = *input.EndDate
	}
	if trip.EndDate.Before(trip.StartDate) {
		return nil, Errorf(KindValidation, "end_date cannot be before start_date")
	}
	if input.TotalSeats != nil {
		if *input.TotalSeats <= 0 {
			return nil, Errorf(KindValidation, "total_seats must be positive")
		}
		booked, err := s.store.SumBookedSeats(ctx, trip.ID)
		if err != nil {
			return nil, err
		}
		if *input.TotalSeats < booked {
			return nil, Errorf(KindCapacityViolation, "total_seats cannot be reduced below %d already booked seats", booked)
		}
		trip.TotalSeats = *input.TotalSeats
	}
	if input.Tags != nil {
		trip.Tags = *input.Tags
	}
	if input.CoverImageURL != nil {
		trip.CoverImageURL = *input.CoverImageURL
	}
	if input.Itinerary != nil {
		trip.Itinerary = input.Itinerary
	}

	trip.UpdatedAt = s.now()
	if err := s.store.UpdateTrip(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Transition moves a trip through its lifecycle state machine. Status
// changes happen nowhere else.
func (s *TripService) Transition(ctx context.Context, organizerID, tripID uuid.UUID, target models.TripStatus) (*models.Trip, error) {
	if !target.Valid() {
		return nil, Errorf(KindValidation, "unknown trip status %q", target)
	}

	trip, err := s.ownedTrip(ctx, organizerID, tripID)
	if err != nil {
		return nil, err
	}

	switch {
	case trip.Status == models.TripStatusDraft && target == models.TripStatusPublished:
		count, err := s.store.CountTripImages(ctx, trip.ID)
		if err != nil {
			return nil, err
		}
		if count < 1 {
			return nil, Errorf(KindInvalidState, "trip needs at least one image before publishing")
		}
	case trip.Status == models.TripStatusPublished && target == models.TripStatusArchived:
	case trip.Status == models.TripStatusArchived && target == models.TripStatusDraft:
	default:
		return nil, Errorf(KindInvalidTransition, "cannot move trip from %s to %s", trip.Status, target)
	}

	trip.Status = target
	trip.UpdatedAt = s.now()
	if err := s.store.UpdateTrip(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// SoftDelete flags the trip inactive. The row persists; the trip just
// disappears from every listing.
func (s *TripService) SoftDelete(ctx context.Context, organizerID, tripID uuid.UUID) error {
	trip, err := s.ownedTrip(ctx, organizerID, tripID)
	if err != nil {
		return err
	}
	trip.IsActive = false
	trip.UpdatedAt = s.now()
	return s.store.UpdateTrip(ctx, trip)
}

// AvailableSeats computes the seat ledger for a trip:
// total_seats minus seats consumed by APPROVED bookings. PENDING and
// REJECTED bookings never count. The result is a point-in-time read
// and may go stale under concurrent writers; the approval transaction
// does its own locked recheck.
func (s *TripService) AvailableSeats(ctx context.Context, tripID uuid.UUID) (int, error) {
	if s.cache != nil {
		var cached int
		if s.cache.Get(ctx, availabilityKey(tripID), &cached) {
			return cached, nil
		}
	}

	trip, err := s.store.GetTripByID(ctx, tripID)
	if err != nil {
		return 0, err
	}
	booked, err := s.store.SumBookedSeats(ctx, tripID)
	if err != nil {
		return 0, err
	}

	available := trip.TotalSeats - booked
	if s.cache != nil {
		s.cache.Set(ctx, availabilityKey(tripID), available, availabilityTTL)
	}
	return available, nil
}

// AddImage attaches an image URL record to a DRAFT trip.
func (s *TripService) AddImage(ctx context.Context, organizerID, tripID uuid.UUID, imageURL string, position int) (*models.TripImage, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, Errorf(KindValidation, "image_url is required")
	}

	trip, err := s.ownedTrip(ctx, organizerID, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusDraft {
		return nil, Errorf(KindInvalidState, "images can only be changed on DRAFT trips")
	}

	image := &models.TripImage{
		ID:        uuid.New(),
		TripID:    trip.ID,
		ImageURL:  imageURL,
		Position:  position,
		CreatedAt: s.now(),
	}
	if err := s.store.AddTripImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// ListImages returns the trip's image records ordered by position.
func (s *TripService) ListImages(ctx context.Context, tripID uuid.UUID) ([]models.TripImage, error) {
	if _, err := s.store.GetTripByID(ctx, tripID); err != nil {
		return nil, err
	}
	return s.store.ListTripImages(ctx, tripID)
}

// DeleteImage removes an image record from a DRAFT trip.
func (s *TripService) DeleteImage(ctx context.Context, organizerID, tripID, imageID uuid.UUID) error {
	trip, err := s.ownedTrip(ctx, organizerID, tripID)
	if err != nil {
		return err
	}
	if trip.Status != models.TripStatusDraft {
		return Errorf(KindInvalidState, "images can only be changed on DRAFT trips")
	}
	return s.store.DeleteTripImage(ctx, trip.ID, imageID)
}

// ownedTrip loads an active trip and verifies organizer ownership.
func (s *TripService) ownedTrip(ctx context.Context, organizerID, tripID uuid.UUID) (*models.Trip, error) {
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
	return trip, nil
}

func availabilityKey(tripID uuid.UUID) string {
	return fmt.Sprintf("trips:availability:%s", tripID)
}

func catalogKey(f TripFilter) string {
	minPrice, maxPrice := -1, -1
	if f.MinPrice != nil {
		minPrice = *f.MinPrice
	}
	if f.MaxPrice != nil {
		maxPrice = *f.MaxPrice
	}
	from := ""
	if f.StartDateFrom != nil {
		from = f.StartDateFrom.Format("2006-01-02")
	}
	return fmt.Sprintf("trips:catalog:%s:%d:%d:%s:%d:%d", f.Destination, minPrice, maxPrice, from, f.Limit, f.Offset)
}
