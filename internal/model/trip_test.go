package model

import "testing"

func TestTripStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to TripStatus
		allowed  bool
	}{
		{TripStatusScheduled, TripStatusActive, true},
		{TripStatusScheduled, TripStatusCancelled, true},
		{TripStatusScheduled, TripStatusCompleted, false},
		{TripStatusActive, TripStatusCompleted, true},
		{TripStatusActive, TripStatusCancelled, true},
		{TripStatusActive, TripStatusScheduled, false},
		{TripStatusCompleted, TripStatusActive, false},
		{TripStatusCompleted, TripStatusScheduled, false},
		{TripStatusCancelled, TripStatusActive, false},
		{TripStatusCancelled, TripStatusScheduled, false},
		{TripStatus("bogus"), TripStatusActive, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestTripStatusValid(t *testing.T) {
	for _, s := range []TripStatus{TripStatusScheduled, TripStatusActive, TripStatusCompleted, TripStatusCancelled} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if TripStatus("en_route").Valid() {
		t.Errorf("expected unknown status to be invalid")
	}
}

func TestTripCapacity(t *testing.T) {
	trip := &Trip{}
	if got := trip.Capacity(); got != 0 {
		t.Fatalf("expected capacity 0 without a vehicle, got %d", got)
	}
	trip.Vehicle = &Vehicle{Capacity: 30}
	if got := trip.Capacity(); got != 30 {
		t.Fatalf("expected capacity 30, got %d", got)
	}
}
