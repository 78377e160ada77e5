package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/domyusuf/safeschooltransport/internal/model"
	"github.com/domyusuf/safeschooltransport/internal/repository"
)

// BookingService allocates seats on trips and manages booking state.
type BookingService struct {
	studentRepo *repository.StudentRepository
	routeRepo   *repository.RouteRepository
	tripRepo    *repository.TripRepository
	bookingRepo *repository.BookingRepository
}

func NewBookingService(
	studentRepo *repository.StudentRepository,
	routeRepo *repository.RouteRepository,
	tripRepo *repository.TripRepository,
	bookingRepo *repository.BookingRepository,
) *BookingService {
	return &BookingService{
		studentRepo: studentRepo,
		routeRepo:   routeRepo,
		tripRepo:    tripRepo,
		bookingRepo: bookingRepo,
	}
}

type CreateBookingInput struct {
	TripID        uuid.UUID
	StudentID     uuid.UUID
	PickupStopID  *uuid.UUID
	DropoffStopID *uuid.UUID
}

// CreateBooking books a seat for one of the caller's students on a
// scheduled trip. The capacity and duplicate checks run under a row
// lock in the repository so concurrent requests cannot oversell the
// vehicle.
func (s *BookingService) CreateBooking(ctx context.Context, principal model.Principal, input CreateBookingInput) (*model.BookingReceipt, error) {
	if !principal.IsParent() {
		return nil, fmt.Errorf("%w: only parents can book seats", ErrPermissionDenied)
	}

	if _, err := s.studentRepo.GetOwned(ctx, input.StudentID, principal.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: student not found or does not belong to you", ErrPermissionDenied)
		}
		return nil, err
	}

	booking := &model.Booking{
		TripID:        input.TripID,
		StudentID:     input.StudentID,
		ParentID:      principal.UserID,
		PickupStopID:  input.PickupStopID,
		DropoffStopID: input.DropoffStopID,
	}

	if err := s.bookingRepo.CreateWithCapacityCheck(ctx, booking); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("%w: trip not found", ErrNotFound)
		case errors.Is(err, repository.ErrTripNotBookable):
			return nil, fmt.Errorf("%w: trip is not available for booking", ErrConflict)
		case errors.Is(err, repository.ErrTripFull):
			return nil, fmt.Errorf("%w: no seats available on this trip", ErrConflict)
		case errors.Is(err, repository.ErrDuplicateBooking):
			return nil, fmt.Errorf("%w: student already has a booking on this trip", ErrConflict)
		default:
			return nil, err
		}
	}

	return &model.BookingReceipt{
		BookingID:  booking.ID,
		SeatNumber: *booking.SeatNumber,
	}, nil
}

// CancelBooking marks the caller's booking cancelled. Bookings on
// active or completed trips can no longer be cancelled.
func (s *BookingService) CancelBooking(ctx context.Context, principal model.Principal, bookingID uuid.UUID) error {
	booking, err := s.bookingRepo.GetOwned(ctx, bookingID, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: booking not found", ErrNotFound)
		}
		return err
	}

	if err := cancellable(booking); err != nil {
		return err
	}

	return s.bookingRepo.UpdateStatus(ctx, booking, model.BookingStatusCancelled, principal.UserID, "cancelled by parent")
}

// cancellable holds the cancellation rules: not already cancelled, and
// the trip has not started or finished.
func cancellable(booking *model.Booking) error {
	if booking.Status == model.BookingStatusCancelled {
		return fmt.Errorf("%w: booking is already cancelled", ErrConflict)
	}
	if booking.Trip != nil &&
		(booking.Trip.Status == model.TripStatusActive || booking.Trip.Status == model.TripStatusCompleted) {
		return fmt.Errorf("%w: cannot cancel booking for an active or completed trip", ErrConflict)
	}
	return nil
}

// AvailableRoutes lists active routes with their scheduled trips on a
// date, each trip annotated with seat availability. Any authenticated
// caller may ask.
func (s *BookingService) AvailableRoutes(ctx context.Context, date string) ([]model.RouteAvailability, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	routes, err := s.routeRepo.ListActiveWithScheduledTrips(ctx, date)
	if err != nil {
		return nil, err
	}

	result := make([]model.RouteAvailability, 0, len(routes))
	for _, route := range routes {
		result = append(result, buildRouteAvailability(route))
	}
	return result, nil
}

// buildRouteAvailability computes per-trip seat counts. Capacity is 0
// when no vehicle is assigned, which reads as full.
func buildRouteAvailability(route model.Route) model.RouteAvailability {
	trips := make([]model.TripAvailability, 0, len(route.Trips))
	for _, trip := range route.Trips {
		booked := 0
		for _, b := range trip.Bookings {
			if b.Status != model.BookingStatusCancelled {
				booked++
			}
		}
		capacity := trip.Capacity()
		available := capacity - booked
		if available < 0 {
			available = 0
		}
		trips = append(trips, model.TripAvailability{
			Trip:           trip,
			BookedSeats:    booked,
			AvailableSeats: available,
			IsFull:         available == 0,
		})
	}

	route.Trips = nil
	return model.RouteAvailability{Route: route, Trips: trips}
}

// ParentBookings returns the caller's bookings split into upcoming and
// past relative to today.
func (s *BookingService) ParentBookings(ctx context.Context, principal model.Principal) (*model.ParentBookings, error) {
	if !principal.IsParent() {
		return nil, fmt.Errorf("%w: only parents have bookings", ErrPermissionDenied)
	}

	bookings, err := s.bookingRepo.ListByParent(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	result := splitParentBookings(bookings, time.Now().Format("2006-01-02"))
	return &result, nil
}

func splitParentBookings(bookings []model.Booking, today string) model.ParentBookings {
	result := model.ParentBookings{
		Upcoming: make([]model.Booking, 0),
		Past:     make([]model.Booking, 0),
		All:      bookings,
	}
	for _, b := range bookings {
		if b.Trip == nil {
			continue
		}
		if b.Trip.Date >= today && b.Status != model.BookingStatusCancelled {
			result.Upcoming = append(result.Upcoming, b)
		}
		if b.Trip.Date < today || b.Status == model.BookingStatusCompleted {
			result.Past = append(result.Past, b)
		}
	}
	return result
}

// ListBookings is the admin view over all bookings, optionally filtered
// by status.
func (s *BookingService) ListBookings(ctx context.Context, principal model.Principal, status *model.BookingStatus) ([]model.Booking, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status", ErrInvalidInput)
	}
	return s.bookingRepo.List(ctx, status)
}

func (s *BookingService) UpdateBookingStatus(ctx context.Context, principal model.Principal, bookingID uuid.UUID, status model.BookingStatus) error {
	if !principal.IsAdmin() {
		return fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown booking status", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetWithTrip(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: booking not found", ErrNotFound)
		}
		return err
	}

	return s.bookingRepo.UpdateStatus(ctx, booking, status, principal.UserID, "updated by admin")
}
