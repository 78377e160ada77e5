package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/domyusuf/safeschooltransport/internal/model"
	"github.com/domyusuf/safeschooltransport/internal/repository"
)

// TripService runs the trip lifecycle, passenger boarding and incident
// reporting.
type TripService struct {
	userRepo     *repository.UserRepository
	vehicleRepo  *repository.VehicleRepository
	tripRepo     *repository.TripRepository
	bookingRepo  *repository.BookingRepository
	incidentRepo *repository.IncidentRepository
}

func NewTripService(
	userRepo *repository.UserRepository,
	vehicleRepo *repository.VehicleRepository,
	tripRepo *repository.TripRepository,
	bookingRepo *repository.BookingRepository,
	incidentRepo *repository.IncidentRepository,
) *TripService {
	return &TripService{
		userRepo:     userRepo,
		vehicleRepo:  vehicleRepo,
		tripRepo:     tripRepo,
		bookingRepo:  bookingRepo,
		incidentRepo: incidentRepo,
	}
}

type CreateTripInput struct {
	RouteID            uuid.UUID
	Date               string
	ScheduledStartTime string
	DriverID           *uuid.UUID
	VehicleID          *uuid.UUID
}

func (s *TripService) CreateTrip(ctx context.Context, principal model.Principal, input CreateTripInput) (*model.Trip, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	if _, err := time.Parse("15:04", input.ScheduledStartTime); err != nil {
		return nil, fmt.Errorf("%w: scheduled start time must be in HH:MM format", ErrInvalidInput)
	}

	trip := &model.Trip{
		RouteID:            input.RouteID,
		DriverID:           input.DriverID,
		VehicleID:          input.VehicleID,
		Date:               input.Date,
		ScheduledStartTime: &input.ScheduledStartTime,
		Status:             model.TripStatusScheduled,
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// AssignDriver puts a driver and an active vehicle on a trip.
// Reassignment is unconditional; nothing stops the same driver being
// assigned to two trips at the same time.
func (s *TripService) AssignDriver(ctx context.Context, principal model.Principal, tripID, driverID, vehicleID uuid.UUID) error {
	if !principal.IsAdmin() {
		return fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}

	driver, err := s.userRepo.GetByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: driver not found", ErrNotFound)
		}
		return err
	}
	if driver.Role != model.UserRoleDriver {
		return fmt.Errorf("%w: user is not a driver", ErrConflict)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: vehicle not found", ErrNotFound)
		}
		return err
	}
	if vehicle.Status != model.VehicleStatusActive {
		return fmt.Errorf("%w: vehicle is not active", ErrConflict)
	}

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: trip not found", ErrNotFound)
		}
		return err
	}

	return s.tripRepo.AssignDriver(ctx, tripID, driverID, vehicleID)
}

// UpdateStatus moves the caller's trip along the lifecycle graph.
// Entering active stamps started_at; entering completed stamps
// completed_at and completes every confirmed booking on the trip.
func (s *TripService) UpdateStatus(ctx context.Context, principal model.Principal, tripID uuid.UUID, to model.TripStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown trip status", ErrInvalidInput)
	}

	trip, err := s.ownedTrip(ctx, principal, tripID)
	if err != nil {
		return err
	}

	if !trip.Status.CanTransitionTo(to) {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrInvalidStatus, trip.Status, to)
	}

	return s.tripRepo.ApplyStatus(ctx, trip, to, principal.UserID, time.Now())
}

// UpdateLocation overwrites the bus position while the trip is active.
func (s *TripService) UpdateLocation(ctx context.Context, principal model.Principal, tripID uuid.UUID, lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	}

	trip, err := s.ownedTrip(ctx, principal, tripID)
	if err != nil {
		return err
	}
	if trip.Status != model.TripStatusActive {
		return fmt.Errorf("%w: can only update location for active trips", ErrConflict)
	}

	return s.tripRepo.UpdateLocation(ctx, tripID, lat, lng)
}

func (s *TripService) DriverSchedule(ctx context.Context, principal model.Principal) ([]model.Trip, error) {
	if !principal.IsDriver() {
		return nil, fmt.Errorf("%w: driver access required", ErrPermissionDenied)
	}
	today := time.Now().Format("2006-01-02")
	return s.tripRepo.ListByDriverAndDate(ctx, principal.UserID, today)
}

func (s *TripService) DriverTrip(ctx context.Context, principal model.Principal, tripID uuid.UUID) (*model.Trip, error) {
	trip, err := s.tripRepo.GetOwned(ctx, tripID, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trip not found or not assigned to you", ErrNotFound)
		}
		return nil, err
	}
	return trip, nil
}

type PassengerAction string

const (
	PassengerActionBoard PassengerAction = "board"
	PassengerActionDrop  PassengerAction = "drop"
)

// UpdatePassengerStatus records a board or drop event on a booking of
// the caller's active trip. Boarding is strictly one way:
// not-boarded -> boarded -> dropped.
func (s *TripService) UpdatePassengerStatus(ctx context.Context, principal model.Principal, bookingID uuid.UUID, action PassengerAction) error {
	booking, err := s.bookingRepo.GetWithTrip(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: booking not found", ErrNotFound)
		}
		return err
	}

	if booking.Trip == nil || booking.Trip.DriverID == nil || *booking.Trip.DriverID != principal.UserID {
		return fmt.Errorf("%w: you are not assigned to this trip", ErrPermissionDenied)
	}
	if booking.Trip.Status != model.TripStatusActive {
		return fmt.Errorf("%w: trip must be active to update passenger status", ErrConflict)
	}

	now := time.Now()
	switch action {
	case PassengerActionBoard:
		if err := boardPassenger(booking); err != nil {
			return err
		}
		return s.bookingRepo.SetBoarded(ctx, booking.ID, now)
	case PassengerActionDrop:
		if err := dropPassenger(booking); err != nil {
			return err
		}
		return s.bookingRepo.SetDropped(ctx, booking.ID, now)
	default:
		return fmt.Errorf("%w: action must be board or drop", ErrInvalidInput)
	}
}

func boardPassenger(booking *model.Booking) error {
	if booking.BoardedAt != nil {
		return fmt.Errorf("%w: passenger already boarded", ErrConflict)
	}
	return nil
}

func dropPassenger(booking *model.Booking) error {
	if booking.BoardedAt == nil {
		return fmt.Errorf("%w: passenger must be boarded first", ErrConflict)
	}
	if booking.DroppedAt != nil {
		return fmt.Errorf("%w: passenger already dropped off", ErrConflict)
	}
	return nil
}

type ReportIncidentInput struct {
	TripID      uuid.UUID
	Description string
	Severity    model.IncidentSeverity
	Location    *string
	Lat         *float64
	Lng         *float64
}

func (s *TripService) ReportIncident(ctx context.Context, principal model.Principal, input ReportIncidentInput) (*model.Incident, error) {
	if len(strings.TrimSpace(input.Description)) < 10 {
		return nil, fmt.Errorf("%w: description must be at least 10 characters", ErrInvalidInput)
	}
	if !input.Severity.Valid() {
		return nil, fmt.Errorf("%w: unknown severity", ErrInvalidInput)
	}

	trip, err := s.ownedTrip(ctx, principal, input.TripID)
	if err != nil {
		return nil, err
	}

	lat, lng := input.Lat, input.Lng
	if lat == nil {
		lat = trip.CurrentLat
	}
	if lng == nil {
		lng = trip.CurrentLng
	}

	incident := &model.Incident{
		TripID:       trip.ID,
		ReportedByID: principal.UserID,
		Description:  input.Description,
		Severity:     input.Severity,
		Location:     input.Location,
		Lat:          lat,
		Lng:          lng,
	}
	if err := s.incidentRepo.Create(ctx, incident); err != nil {
		return nil, err
	}
	return incident, nil
}

func (s *TripService) DriverIncidents(ctx context.Context, principal model.Principal) ([]model.Incident, error) {
	if !principal.IsDriver() {
		return nil, fmt.Errorf("%w: driver access required", ErrPermissionDenied)
	}
	return s.incidentRepo.ListByReporter(ctx, principal.UserID, 50)
}

// ownedTrip loads a trip and checks the caller is its assigned driver.
func (s *TripService) ownedTrip(ctx context.Context, principal model.Principal, tripID uuid.UUID) (*model.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trip not found", ErrNotFound)
		}
		return nil, err
	}
	if trip.DriverID == nil || *trip.DriverID != principal.UserID {
		return nil, fmt.Errorf("%w: trip not assigned to you", ErrPermissionDenied)
	}
	return trip, nil
}
