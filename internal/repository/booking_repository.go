package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/domyusuf/safeschooltransport/internal/model"
)

// Booking failures the allocator distinguishes. Each maps to its own
// caller-visible error in the service layer.
var (
	ErrTripNotBookable  = errors.New("trip is not open for booking")
	ErrTripFull         = errors.New("no seats available on this trip")
	ErrDuplicateBooking = errors.New("student already has a booking on this trip")
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateWithCapacityCheck allocates a seat under a row lock on the trip
// so two bookings racing for the last seat cannot both win. The booking
// comes back with its seat number and confirmed status filled in.
// A partial unique index on (trip_id, student_id) backs the duplicate
// check at the store level.
func (r *BookingRepository) CreateWithCapacityCheck(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip model.Trip
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&trip, "id = ?", booking.TripID).Error; err != nil {
			return err
		}

		if trip.Status != model.TripStatusScheduled {
			return ErrTripNotBookable
		}

		capacity := 0
		if trip.VehicleID != nil {
			var vehicle model.Vehicle
			if err := tx.First(&vehicle, "id = ?", *trip.VehicleID).Error; err != nil {
				return err
			}
			capacity = vehicle.Capacity
		}

		var live []model.Booking
		if err := tx.Where("trip_id = ? AND status <> ?", trip.ID, model.BookingStatusCancelled).
			Find(&live).Error; err != nil {
			return err
		}

		for _, b := range live {
			if b.StudentID == booking.StudentID {
				return ErrDuplicateBooking
			}
		}
		if len(live) >= capacity {
			return ErrTripFull
		}

		seat := len(live) + 1
		booking.SeatNumber = &seat
		booking.Status = model.BookingStatusConfirmed

		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		return tx.Create(&model.BookingStatusLog{
			BookingID: booking.ID,
			NewStatus: model.BookingStatusConfirmed,
			Note:      "booking created",
			ChangedBy: &booking.ParentID,
		}).Error
	})
}

// GetOwned returns the booking with its trip only when it belongs to
// the given parent.
func (r *BookingRepository) GetOwned(ctx context.Context, bookingID, parentID uuid.UUID) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).
		Preload("Trip").
		First(&booking, "id = ? AND parent_id = ?", bookingID, parentID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) GetWithTrip(ctx context.Context, bookingID uuid.UUID) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).
		Preload("Trip").
		First(&booking, "id = ?", bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) ListByParent(ctx context.Context, parentID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Preload("Student").
		Preload("Trip").
		Preload("Trip.Route").
		Preload("Trip.Vehicle").
		Preload("Trip.Driver").
		Preload("PickupStop").
		Preload("DropoffStop").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) List(ctx context.Context, status *model.BookingStatus) ([]model.Booking, error) {
	query := r.db.WithContext(ctx).Model(&model.Booking{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var bookings []model.Booking
	if err := query.
		Preload("Student").
		Preload("Parent").
		Preload("Trip").
		Preload("Trip.Route").
		Preload("Trip.Vehicle").
		Preload("Trip.Driver").
		Preload("PickupStop").
		Preload("DropoffStop").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus sets the booking status and logs the change.
func (r *BookingRepository) UpdateStatus(ctx context.Context, booking *model.Booking, to model.BookingStatus, changedBy uuid.UUID, note string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Booking{}).
			Where("id = ?", booking.ID).
			Update("status", to).Error; err != nil {
			return err
		}

		prev := booking.Status
		return tx.Create(&model.BookingStatusLog{
			BookingID: booking.ID,
			OldStatus: &prev,
			NewStatus: to,
			Note:      note,
			ChangedBy: &changedBy,
		}).Error
	})
}

// SetBoarded and SetDropped stamp the boarding timestamps. The ordering
// rules live in the service layer.
func (r *BookingRepository) SetBoarded(ctx context.Context, bookingID uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", bookingID).
		Update("boarded_at", at).Error
}

func (r *BookingRepository) SetDropped(ctx context.Context, bookingID uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", bookingID).
		Update("dropped_at", at).Error
}
