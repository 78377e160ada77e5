package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/domyusuf/safeschooltransport/internal/model"
)

func TestReportIncidentValidation(t *testing.T) {
	svc := NewTripService(nil, nil, nil, nil, nil)
	principal := model.Principal{Role: model.UserRoleDriver}

	_, err := svc.ReportIncident(context.Background(), principal, ReportIncidentInput{
		Description: "too short",
		Severity:    model.IncidentSeverityLow,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for short description, got %v", err)
	}

	_, err = svc.ReportIncident(context.Background(), principal, ReportIncidentInput{
		Description: "flat tire on the highway shoulder",
		Severity:    model.IncidentSeverity("catastrophic"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown severity, got %v", err)
	}
}

func TestBoardPassenger(t *testing.T) {
	now := time.Now()

	if err := boardPassenger(&model.Booking{}); err != nil {
		t.Fatalf("boarding a fresh passenger: %v", err)
	}

	err := boardPassenger(&model.Booking{BoardedAt: &now})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on double board, got %v", err)
	}
}

func TestDropPassenger(t *testing.T) {
	now := time.Now()

	err := dropPassenger(&model.Booking{})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict dropping an unboarded passenger, got %v", err)
	}

	if err := dropPassenger(&model.Booking{BoardedAt: &now}); err != nil {
		t.Fatalf("dropping a boarded passenger: %v", err)
	}

	err = dropPassenger(&model.Booking{BoardedAt: &now, DroppedAt: &now})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on double drop, got %v", err)
	}
}
