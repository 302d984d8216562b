package models

import (
	"testing"
	"time"
)

func TestTripStatusValid(t *testing.T) {
	for _, s := range []TripStatus{TripStatusDraft, TripStatusPublished, TripStatusArchived} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if TripStatus("CANCELLED").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestTripOpenForBooking(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	trip := Trip{
		Status:    TripStatusPublished,
		IsActive:  true,
		StartDate: now.Add(24 * time.Hour),
	}

	if !trip.OpenForBooking(now) {
		t.Error("published future trip should accept bookings")
	}

	draft := trip
	draft.Status = TripStatusDraft
	if draft.OpenForBooking(now) {
		t.Error("draft trip must not accept bookings")
	}

	deleted := trip
	deleted.IsActive = false
	if deleted.OpenForBooking(now) {
		t.Error("soft-deleted trip must not accept bookings")
	}

	started := trip
	started.StartDate = now
	if started.OpenForBooking(now) {
		t.Error("trip starting now must not accept bookings")
	}
}
