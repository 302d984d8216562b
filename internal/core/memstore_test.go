package core

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"TRIPVANA_BACK-END/internal/models"
)

// memStore is an in-memory Store for service tests. InTx holds the
// store mutex for the whole transaction, which models the row-lock
// serialization the real store gets from SELECT ... FOR UPDATE.
type memStore struct {
	mu         sync.Mutex
	trips      map[uuid.UUID]*models.Trip
	organizers map[uuid.UUID]*models.Organizer
	bookings   map[uuid.UUID]*models.Booking
	images     map[uuid.UUID]*models.TripImage
}

func newMemStore() *memStore {
	return &memStore{
		trips:      make(map[uuid.UUID]*models.Trip),
		organizers: make(map[uuid.UUID]*models.Organizer),
		bookings:   make(map[uuid.UUID]*models.Booking),
		images:     make(map[uuid.UUID]*models.TripImage),
	}
}

func copyTrip(t *models.Trip) *models.Trip {
	c := *t
	return &c
}

func copyBooking(b *models.Booking) *models.Booking {
	c := *b
	return &c
}

func (m *memStore) GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getTripLocked(id)
}

func (m *memStore) getTripLocked(id uuid.UUID) (*models.Trip, error) {
	t, ok := m.trips[id]
	if !ok {
		return nil, Errorf(KindNotFound, "trip not found")
	}
	return copyTrip(t), nil
}

func (m *memStore) GetActiveTripBySlug(ctx context.Context, slug string) (*models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.trips {
		if t.Slug == slug && t.IsActive {
			return copyTrip(t), nil
		}
	}
	return nil, Errorf(KindNotFound, "trip not found")
}

func (m *memStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.trips {
		if t.OrganizerID == trip.OrganizerID && t.Slug == trip.Slug {
			return Errorf(KindConflict, "slug already in use")
		}
	}
	m.trips[trip.ID] = copyTrip(trip)
	return nil
}

func (m *memStore) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[trip.ID]; !ok {
		return Errorf(KindNotFound, "trip not found")
	}
	m.trips[trip.ID] = copyTrip(trip)
	return nil
}

func (m *memStore) ListPublicTrips(ctx context.Context, filter TripFilter) ([]models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Trip
	for _, t := range m.trips {
		if !t.IsActive || t.Status != models.TripStatusPublished {
			continue
		}
		if filter.Destination != "" && !strings.Contains(strings.ToLower(t.Destination), strings.ToLower(filter.Destination)) {
			continue
		}
		if filter.MinPrice != nil && t.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && t.Price > *filter.MaxPrice {
			continue
		}
		if filter.StartDateFrom != nil && t.StartDate.Before(*filter.StartDateFrom) {
			continue
		}
		out = append(out, *copyTrip(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, filter.Limit, filter.Offset), nil
}

func (m *memStore) ListOrganizerTrips(ctx context.Context, organizerID uuid.UUID, limit, offset int) ([]models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Trip
	for _, t := range m.trips {
		if t.OrganizerID == organizerID && t.IsActive {
			out = append(out, *copyTrip(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, limit, offset), nil
}

func (m *memStore) GetOrganizerByID(ctx context.Context, id uuid.UUID) (*models.Organizer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.organizers[id]
	if !ok {
		return nil, Errorf(KindNotFound, "organizer not found")
	}
	c := *o
	return &c, nil
}

func (m *memStore) AddTripImage(ctx context.Context, image *models.TripImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *image
	m.images[image.ID] = &c
	return nil
}

func (m *memStore) ListTripImages(ctx context.Context, tripID uuid.UUID) ([]models.TripImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.TripImage
	for _, img := range m.images {
		if img.TripID == tripID {
			out = append(out, *img)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *memStore) DeleteTripImage(ctx context.Context, tripID, imageID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	img, ok := m.images[imageID]
	if !ok || img.TripID != tripID {
		return Errorf(KindNotFound, "image not found")
	}
	delete(m.images, imageID)
	return nil
}

func (m *memStore) CountTripImages(ctx context.Context, tripID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, img := range m.images {
		if img.TripID == tripID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) SumBookedSeats(ctx context.Context, tripID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sumBookedSeatsLocked(tripID), nil
}

func (m *memStore) sumBookedSeatsLocked(tripID uuid.UUID) int {
	sum := 0
	for _, b := range m.bookings {
		if b.TripID == tripID && b.Status == models.BookingStatusApproved {
			sum += b.SeatsBooked
		}
	}
	return sum
}

func (m *memStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = copyBooking(booking)
	return nil
}

func (m *memStore) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, Errorf(KindNotFound, "booking not found")
	}
	return copyBooking(b), nil
}

func (m *memStore) HasPendingBooking(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.TripID == tripID && b.UserID != nil && *b.UserID == userID && b.Status == models.BookingStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListOrganizerBookings(ctx context.Context, organizerID uuid.UUID, filter BookingFilter) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.bookings {
		t, ok := m.trips[b.TripID]
		if !ok || t.OrganizerID != organizerID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, *copyBooking(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, filter.Limit, filter.Offset), nil
}

func (m *memStore) ListUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.bookings {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, *copyBooking(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, limit, offset), nil
}

func (m *memStore) LatestUserBookingForTrip(ctx context.Context, userID, tripID uuid.UUID) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var latest *models.Booking
	for _, b := range m.bookings {
		if b.TripID != tripID || b.UserID == nil || *b.UserID != userID {
			continue
		}
		if latest == nil || b.CreatedAt.After(latest.CreatedAt) {
			latest = b
		}
	}
	if latest == nil {
		return nil, Errorf(KindNotFound, "booking not found")
	}
	return copyBooking(latest), nil
}

func (m *memStore) InTx(ctx context.Context, fn func(tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &memTx{store: m, staged: make(map[uuid.UUID]models.BookingStatus)}
	if err := fn(tx); err != nil {
		return err
	}
	for id, status := range tx.staged {
		m.bookings[id].Status = status
	}
	return nil
}

// memTx stages status writes and applies them on commit only.
type memTx struct {
	store  *memStore
	staged map[uuid.UUID]models.BookingStatus
}

func (t *memTx) GetBookingForUpdate(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	b, ok := t.store.bookings[id]
	if !ok {
		return nil, Errorf(KindNotFound, "booking not found")
	}
	return copyBooking(b), nil
}

func (t *memTx) GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	return t.store.getTripLocked(id)
}

func (t *memTx) SumBookedSeats(ctx context.Context, tripID uuid.UUID) (int, error) {
	return t.store.sumBookedSeatsLocked(tripID), nil
}

func (t *memTx) SetBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	if _, ok := t.store.bookings[id]; !ok {
		return Errorf(KindNotFound, "booking not found")
	}
	t.staged[id] = status
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// memCache is a TTL-less Cache fake recording deletes.
type memCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{values: make(map[string][]byte)}
}

func (c *memCache) Get(ctx context.Context, key string, dest any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.values[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c *memCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if data, err := json.Marshal(value); err == nil {
		c.values[key] = data
	}
}

func (c *memCache) Del(ctx context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.values, k)
		c.deleted = append(c.deleted, k)
	}
}
