package core

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"TRIPVANA_BACK-END/internal/models"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestTripService(store *memStore, cache Cache) *TripService {
	s := NewTripService(store, cache)
	s.now = func() time.Time { return testTime }
	return s
}

func newTestBookingService(store *memStore, cache Cache) *BookingService {
	s := NewBookingService(store, cache)
	s.now = func() time.Time { return testTime }
	return s
}

func seedOrganizer(store *memStore, email string) uuid.UUID {
	id := uuid.New()
	store.organizers[id] = &models.Organizer{ID: id, Name: "Acme Travels", Email: email, CreatedAt: testTime}
	return id
}

func seedTrip(store *memStore, organizerID uuid.UUID, status models.TripStatus, totalSeats int) *models.Trip {
	trip := &models.Trip{
		ID:          uuid.New(),
		OrganizerID: organizerID,
		Slug:        "trip-" + uuid.NewString()[:8],
		Title:       "Ladakh Circuit",
		Destination: "Leh",
		Price:       25000,
		StartDate:   testTime.Add(30 * 24 * time.Hour),
		EndDate:     testTime.Add(37 * 24 * time.Hour),
		TotalSeats:  totalSeats,
		Status:      status,
		IsActive:    true,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
	store.trips[trip.ID] = trip
	return trip
}

func seedBooking(store *memStore, tripID uuid.UUID, userID *uuid.UUID, seats int, status models.BookingStatus) *models.Booking {
	b := &models.Booking{
		ID:           uuid.New(),
		TripID:       tripID,
		UserID:       userID,
		SeatsBooked:  seats,
		NumTravelers: seats,
		Source:       models.BookingSourceUser,
		Status:       status,
		CreatedAt:    testTime,
	}
	store.bookings[b.ID] = b
	return b
}

func validCreateInput() CreateTripInput {
	return CreateTripInput{
		Title:       "Ladakh Circuit",
		Destination: "Leh",
		Price:       25000,
		StartDate:   testTime.Add(30 * 24 * time.Hour),
		EndDate:     testTime.Add(37 * 24 * time.Hour),
		TotalSeats:  10,
	}
}

func TestCreateTripStartsAsDraft(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")

	trip, err := svc.CreateTrip(context.Background(), organizerID, validCreateInput())
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	if trip.Status != models.TripStatusDraft {
		t.Errorf("status: got %s, want DRAFT", trip.Status)
	}
	if trip.Slug != "ladakh-circuit-leh-2026-03-31" {
		t.Errorf("slug: got %q", trip.Slug)
	}
	if !trip.IsActive {
		t.Error("new trip should be active")
	}
}

func TestCreateTripValidation(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")

	cases := []struct {
		name   string
		mutate func(*CreateTripInput)
	}{
		{"empty title", func(in *CreateTripInput) { in.Title = "  " }},
		{"empty destination", func(in *CreateTripInput) { in.Destination = "" }},
		{"zero price", func(in *CreateTripInput) { in.Price = 0 }},
		{"zero seats", func(in *CreateTripInput) { in.TotalSeats = 0 }},
		{"missing dates", func(in *CreateTripInput) { in.StartDate = time.Time{} }},
		{"end before start", func(in *CreateTripInput) { in.EndDate = in.StartDate.Add(-24 * time.Hour) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateInput()
			tc.mutate(&in)
			_, err := svc.CreateTrip(context.Background(), organizerID, in)
			if !IsKind(err, KindValidation) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}
}

func TestCreateTripRetriesSlugOnConflict(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")

	first, err := svc.CreateTrip(context.Background(), organizerID, validCreateInput())
	if err != nil {
		t.Fatalf("first CreateTrip: %v", err)
	}
	second, err := svc.CreateTrip(context.Background(), organizerID, validCreateInput())
	if err != nil {
		t.Fatalf("second CreateTrip: %v", err)
	}
	if second.Slug == first.Slug {
		t.Errorf("second slug %q should differ from first", second.Slug)
	}
	if !strings.HasPrefix(second.Slug, first.Slug+"-") {
		t.Errorf("second slug %q should extend %q with a suffix", second.Slug, first.Slug)
	}
}

func TestUpdateTripOnlyInDraft(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")
	trip := seedTrip(store, organizerID, models.TripStatusPublished, 10)

	title := "New Title"
	_, err := svc.UpdateTrip(context.Background(), organizerID, trip.ID, UpdateTripInput{Title: &title})
	if !IsKind(err, KindInvalidState) {
		t.Errorf("got %v, want invalid_state", err)
	}
}

func TestUpdateTripSeatsCannotDropBelowBooked(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")
	trip := seedTrip(store, organizerID, models.TripStatusDraft, 10)
	userID := uuid.New()
	seedBooking(store, trip.ID, &userID, 6, models.BookingStatusApproved)

	seats := 5
	_, err := svc.UpdateTrip(context.Background(), organizerID, trip.ID, UpdateTripInput{TotalSeats: &seats})
	if !IsKind(err, KindCapacityViolation) {
		t.Errorf("got %v, want capacity_violation", err)
	}

	seats = 6
	updated, err := svc.UpdateTrip(context.Background(), organizerID, trip.ID, UpdateTripInput{TotalSeats: &seats})
	if err != nil {
		t.Fatalf("reduce to booked count: %v", err)
	}
	if updated.TotalSeats != 6 {
		t.Errorf("total seats: got %d, want 6", updated.TotalSeats)
	}
}

func TestPublishRequiresAtLeastOneImage(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")
	trip := seedTrip(store, organizerID, models.TripStatusDraft, 10)

	_, err := svc.Transition(context.Background(), organizerID, trip.ID, models.TripStatusPublished)
	if !IsKind(err, KindInvalidState) {
		t.Fatalf("publish without images: got %v, want invalid_state", err)
	}

	if _, err := svc.AddImage(context.Background(), organizerID, trip.ID, "https://img.test/cover.jpg", 0); err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	published, err := svc.Transition(context.Background(), organizerID, trip.ID, models.TripStatusPublished)
	if err != nil {
		t.Fatalf("publish with image: %v", err)
	}
	if published.Status != models.TripStatusPublished {
		t.Errorf("status: got %s, want PUBLISHED", published.Status)
	}
}

func TestTripLifecycleTransitions(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")
	trip := seedTrip(store, organizerID, models.TripStatusPublished, 10)

	archived, err := svc.Transition(context.Background(), organizerID, trip.ID, models.TripStatusArchived)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if archived.Status != models.TripStatusArchived {
		t.Errorf("status: got %s, want ARCHIVED", archived.Status)
	}

	reopened, err := svc.Transition(context.Background(), organizerID, trip.ID, models.TripStatusDraft)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Status != models.TripStatusDraft {
		t.Errorf("status: got %s, want DRAFT", reopened.Status)
	}

	// DRAFT cannot jump straight to ARCHIVED.
	_, err = svc.Transition(context.Background(), organizerID, trip.ID, models.TripStatusArchived)
	if !IsKind(err, KindInvalidTransition) {
		t.Errorf("draft to archived: got %v, want invalid_transition", err)
	}
}

func TestTransitionForeignOrganizer(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")
	trip := seedTrip(store, organizerID, models.TripStatusPublished, 10)

	_, err := svc.Transition(context.Background(), uuid.New(), trip.ID, models.TripStatusArchived)
	if !IsKind(err, KindPermissionDenied) {
		t.Errorf("got %v, want permission_denied", err)
	}
}

func TestSoftDeleteHidesTrip(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")
	trip := seedTrip(store, organizerID, models.TripStatusPublished, 10)

	if err := svc.SoftDelete(context.Background(), organizerID, trip.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if _, err := svc.GetBySlug(context.Background(), trip.Slug); !IsKind(err, KindNotFound) {
		t.Errorf("slug lookup after delete: got %v, want not_found", err)
	}
	// The row itself persists.
	if _, ok := store.trips[trip.ID]; !ok {
		t.Error("soft delete must keep the row")
	}
	// Repeat deletes report not found, not success.
	if err := svc.SoftDelete(context.Background(), organizerID, trip.ID); !IsKind(err, KindNotFound) {
		t.Errorf("second delete: got %v, want not_found", err)
	}
}

func TestAvailableSeatsCountsOnlyApproved(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")
	trip := seedTrip(store, organizerID, models.TripStatusPublished, 10)

	u1, u2, u3 := uuid.New(), uuid.New(), uuid.New()
	seedBooking(store, trip.ID, &u1, 4, models.BookingStatusApproved)
	seedBooking(store, trip.ID, &u2, 5, models.BookingStatusPending)
	seedBooking(store, trip.ID, &u3, 3, models.BookingStatusRejected)

	available, err := svc.AvailableSeats(context.Background(), trip.ID)
	if err != nil {
		t.Fatalf("AvailableSeats: %v", err)
	}
	if available != 6 {
		t.Errorf("available: got %d, want 6", available)
	}
}

func TestAvailableSeatsCanGoNegative(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")
	trip := seedTrip(store, organizerID, models.TripStatusPublished, 5)

	// An oversold ledger, e.g. after a manual data fix, is reported as
	// is rather than clamped to zero.
	u := uuid.New()
	seedBooking(store, trip.ID, &u, 7, models.BookingStatusApproved)

	available, err := svc.AvailableSeats(context.Background(), trip.ID)
	if err != nil {
		t.Fatalf("AvailableSeats: %v", err)
	}
	if available != -2 {
		t.Errorf("available: got %d, want -2", available)
	}
}

func TestAvailableSeatsUsesCache(t *testing.T) {
	store := newMemStore()
	cache := newMemCache()
	svc := newTestTripService(store, cache)
	organizerID := seedOrganizer(store, "owner@acme.test")
	trip := seedTrip(store, organizerID, models.TripStatusPublished, 10)

	if _, err := svc.AvailableSeats(context.Background(), trip.ID); err != nil {
		t.Fatalf("first read: %v", err)
	}

	// Mutate the store behind the cache; the cached value must win.
	u := uuid.New()
	seedBooking(store, trip.ID, &u, 4, models.BookingStatusApproved)

	available, err := svc.AvailableSeats(context.Background(), trip.ID)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if available != 10 {
		t.Errorf("cached available: got %d, want 10", available)
	}
}

func TestImagesOnlyMutableInDraft(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")
	trip := seedTrip(store, organizerID, models.TripStatusPublished, 10)

	if _, err := svc.AddImage(context.Background(), organizerID, trip.ID, "https://img.test/a.jpg", 0); !IsKind(err, KindInvalidState) {
		t.Errorf("add on published: got %v, want invalid_state", err)
	}
	if err := svc.DeleteImage(context.Background(), organizerID, trip.ID, uuid.New()); !IsKind(err, KindInvalidState) {
		t.Errorf("delete on published: got %v, want invalid_state", err)
	}
}

func TestListPublicOnlyShowsPublished(t *testing.T) {
	store := newMemStore()
	svc := newTestTripService(store, nil)
	organizerID := seedOrganizer(store, "owner@acme.test")
	seedTrip(store, organizerID, models.TripStatusDraft, 10)
	published := seedTrip(store, organizerID, models.TripStatusPublished, 10)
	seedTrip(store, organizerID, models.TripStatusArchived, 10)

	trips, err := svc.ListPublic(context.Background(), TripFilter{})
	if err != nil {
		t.Fatalf("ListPublic: %v", err)
	}
	if len(trips) != 1 || trips[0].ID != published.ID {
		t.Errorf("got %d trips, want exactly the published one", len(trips))
	}
}
