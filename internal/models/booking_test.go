package models

import "testing"

func TestNormalizeBookingStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want BookingStatus
	}{
		{"PENDING", BookingStatusPending},
		{"APPROVED", BookingStatusApproved},
		{"REJECTED", BookingStatusRejected},
		{"confirmed", BookingStatusApproved},
		{"Confirmed", BookingStatusApproved},
		{" approved ", BookingStatusApproved},
		{"", BookingStatusPending},
		{"garbage", BookingStatusPending},
	}
	for _, tc := range cases {
		if got := NormalizeBookingStatus(tc.raw); got != tc.want {
			t.Errorf("NormalizeBookingStatus(%q): got %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	if BookingStatusPending.Terminal() {
		t.Error("PENDING must not be terminal")
	}
	if !BookingStatusApproved.Terminal() {
		t.Error("APPROVED must be terminal")
	}
	if !BookingStatusRejected.Terminal() {
		t.Error("REJECTED must be terminal")
	}
}

func TestRequestedSeatsFallsBackToSeatsBooked(t *testing.T) {
	b := &Booking{SeatsBooked: 3, NumTravelers: 2}
	if got := b.RequestedSeats(); got != 2 {
		t.Errorf("with travelers: got %d, want 2", got)
	}

	// Legacy rows have no traveler details.
	legacy := &Booking{SeatsBooked: 3}
	if got := legacy.RequestedSeats(); got != 3 {
		t.Errorf("legacy row: got %d, want 3", got)
	}
}
