package service

import (
	"errors"
	"testing"

	"github.com/domyusuf/safeschooltransport/internal/model"
)

func TestCancellable(t *testing.T) {
	cases := []struct {
		name       string
		booking    model.Booking
		tripStatus model.TripStatus
		wantErr    bool
	}{
		{"confirmed on scheduled trip", model.Booking{Status: model.BookingStatusConfirmed}, model.TripStatusScheduled, false},
		{"pending on scheduled trip", model.Booking{Status: model.BookingStatusPending}, model.TripStatusScheduled, false},
		{"already cancelled", model.Booking{Status: model.BookingStatusCancelled}, model.TripStatusScheduled, true},
		{"trip already active", model.Booking{Status: model.BookingStatusConfirmed}, model.TripStatusActive, true},
		{"trip completed", model.Booking{Status: model.BookingStatusConfirmed}, model.TripStatusCompleted, true},
		{"trip cancelled", model.Booking{Status: model.BookingStatusConfirmed}, model.TripStatusCancelled, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.booking
			b.Trip = &model.Trip{Status: tc.tripStatus}
			err := cancellable(&b)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err != nil && !errors.Is(err, ErrConflict) {
				t.Fatalf("expected conflict error, got %v", err)
			}
		})
	}
}

func TestBuildRouteAvailability(t *testing.T) {
	route := model.Route{
		Name: "Morning Route A",
		Trips: []model.Trip{
			{
				Vehicle: &model.Vehicle{Capacity: 3},
				Bookings: []model.Booking{
					{Status: model.BookingStatusConfirmed},
					{Status: model.BookingStatusCancelled},
					{Status: model.BookingStatusPending},
				},
			},
			{
				// no vehicle assigned yet
				Bookings: []model.Booking{},
			},
		},
	}

	got := buildRouteAvailability(route)
	if len(got.Trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(got.Trips))
	}

	first := got.Trips[0]
	if first.BookedSeats != 2 {
		t.Errorf("expected 2 booked seats (cancelled excluded), got %d", first.BookedSeats)
	}
	if first.AvailableSeats != 1 {
		t.Errorf("expected 1 available seat, got %d", first.AvailableSeats)
	}
	if first.IsFull {
		t.Errorf("expected trip not full")
	}

	second := got.Trips[1]
	if second.AvailableSeats != 0 || !second.IsFull {
		t.Errorf("expected vehicle-less trip to read as full, got available=%d full=%v",
			second.AvailableSeats, second.IsFull)
	}
}

func TestBuildRouteAvailabilityOverbooked(t *testing.T) {
	route := model.Route{
		Trips: []model.Trip{
			{
				Vehicle: &model.Vehicle{Capacity: 1},
				Bookings: []model.Booking{
					{Status: model.BookingStatusConfirmed},
					{Status: model.BookingStatusConfirmed},
				},
			},
		},
	}
	got := buildRouteAvailability(route)
	if got.Trips[0].AvailableSeats != 0 {
		t.Fatalf("available seats must not go negative, got %d", got.Trips[0].AvailableSeats)
	}
}

func TestSplitParentBookings(t *testing.T) {
	today := "2026-03-10"
	bookings := []model.Booking{
		{Status: model.BookingStatusConfirmed, Trip: &model.Trip{Date: "2026-03-11"}},
		{Status: model.BookingStatusCancelled, Trip: &model.Trip{Date: "2026-03-12"}},
		{Status: model.BookingStatusCompleted, Trip: &model.Trip{Date: "2026-03-10"}},
		{Status: model.BookingStatusConfirmed, Trip: &model.Trip{Date: "2026-03-01"}},
	}

	got := splitParentBookings(bookings, today)

	if len(got.All) != 4 {
		t.Errorf("expected all 4 bookings kept, got %d", len(got.All))
	}
	// today's completed booking counts as upcoming by date but also past by status
	if len(got.Upcoming) != 2 {
		t.Errorf("expected 2 upcoming bookings, got %d", len(got.Upcoming))
	}
	if len(got.Past) != 2 {
		t.Errorf("expected 2 past bookings, got %d", len(got.Past))
	}
}

func TestSplitParentBookingsEmpty(t *testing.T) {
	got := splitParentBookings(nil, "2026-03-10")
	if got.Upcoming == nil || got.Past == nil {
		t.Fatalf("expected empty slices, not nil")
	}
}
