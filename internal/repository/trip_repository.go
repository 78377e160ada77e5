package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/domyusuf/safeschooltransport/internal/model"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	if err := r.db.WithContext(ctx).
		Preload("Vehicle").
		First(&trip, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetOwned returns the full trip aggregate only when it is assigned to
// the given driver.
func (r *TripRepository) GetOwned(ctx context.Context, tripID, driverID uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	if err := r.db.WithContext(ctx).
		Preload("Route").
		Preload("Route.Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("stops.order_index ASC")
		}).
		Preload("Vehicle").
		Preload("Bookings").
		Preload("Bookings.Student").
		Preload("Bookings.PickupStop").
		Preload("Bookings.DropoffStop").
		Preload("Incidents").
		First(&trip, "id = ? AND driver_id = ?", tripID, driverID).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) ListByDriverAndDate(ctx context.Context, driverID uuid.UUID, date string) ([]model.Trip, error) {
	var trips []model.Trip
	if err := r.db.WithContext(ctx).
		Where("driver_id = ? AND date = ?", driverID, date).
		Preload("Route").
		Preload("Route.Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("stops.order_index ASC")
		}).
		Preload("Vehicle").
		Preload("Bookings").
		Preload("Bookings.Student").
		Preload("Bookings.PickupStop").
		Preload("Bookings.DropoffStop").
		Order("scheduled_start_time ASC").
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) ListByDate(ctx context.Context, date string) ([]model.Trip, error) {
	var trips []model.Trip
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Preload("Route").
		Preload("Driver").
		Preload("Vehicle").
		Preload("Bookings").
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) ListActiveByDate(ctx context.Context, date string) ([]model.Trip, error) {
	var trips []model.Trip
	if err := r.db.WithContext(ctx).
		Where("date = ? AND status = ?", date, model.TripStatusActive).
		Preload("Route").
		Preload("Driver").
		Preload("Vehicle").
		Preload("Bookings").
		Preload("Bookings.Student").
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) AssignDriver(ctx context.Context, tripID, driverID, vehicleID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("id = ?", tripID).
		Updates(map[string]interface{}{
			"driver_id":  driverID,
			"vehicle_id": vehicleID,
		}).Error
}

// ApplyStatus moves the trip to a new status, stamps the lifecycle
// timestamp for that status and logs the change. Entering completed
// also flips every confirmed booking on the trip to completed, all in
// one transaction.
func (r *TripRepository) ApplyStatus(ctx context.Context, trip *model.Trip, to model.TripStatus, changedBy uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": to}
		switch to {
		case model.TripStatusActive:
			updates["started_at"] = now
		case model.TripStatusCompleted:
			updates["completed_at"] = now
		}

		if err := tx.Model(&model.Trip{}).
			Where("id = ?", trip.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		if to == model.TripStatusCompleted {
			if err := tx.Model(&model.Booking{}).
				Where("trip_id = ? AND status = ?", trip.ID, model.BookingStatusConfirmed).
				Update("status", model.BookingStatusCompleted).Error; err != nil {
				return err
			}
		}

		prev := trip.Status
		return tx.Create(&model.TripStatusLog{
			TripID:    trip.ID,
			OldStatus: &prev,
			NewStatus: to,
			ChangedBy: &changedBy,
		}).Error
	})
}

// UpdateLocation overwrites the trip's last known coordinates. No
// history is kept.
func (r *TripRepository) UpdateLocation(ctx context.Context, tripID uuid.UUID, lat, lng float64) error {
	return r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("id = ?", tripID).
		Updates(map[string]interface{}{
			"current_lat": lat,
			"current_lng": lng,
		}).Error
}
