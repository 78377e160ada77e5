package model

import (
	"testing"
	"time"
)

func TestBookingAboard(t *testing.T) {
	now := time.Now()

	b := &Booking{}
	if b.Aboard() {
		t.Fatalf("expected not aboard before boarding")
	}

	b.BoardedAt = &now
	if !b.Aboard() {
		t.Fatalf("expected aboard after boarding")
	}

	b.DroppedAt = &now
	if b.Aboard() {
		t.Fatalf("expected not aboard after drop off")
	}
}

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if BookingStatus("waitlisted").Valid() {
		t.Errorf("expected unknown status to be invalid")
	}
}
