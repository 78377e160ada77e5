package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/domyusuf/safeschooltransport/internal/model"
)

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// CreateWithStops inserts the route and its stops in one transaction so
// a half-created route never becomes visible.
func (r *RouteRepository) CreateWithStops(ctx context.Context, route *model.Route, stops []model.Stop) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(route).Error; err != nil {
			return err
		}
		for i := range stops {
			stops[i].RouteID = route.ID
		}
		return tx.Create(&stops).Error
	})
}

func (r *RouteRepository) ListWithStops(ctx context.Context) ([]model.Route, error) {
	var routes []model.Route
	if err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("stops.order_index ASC")
		}).
		Order("name ASC").
		Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

// ListActiveWithScheduledTrips returns active routes with their ordered
// stops and the scheduled trips for one date, trips carrying vehicle,
// driver and bookings for availability math.
func (r *RouteRepository) ListActiveWithScheduledTrips(ctx context.Context, date string) ([]model.Route, error) {
	var routes []model.Route
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("stops.order_index ASC")
		}).
		Preload("Trips", "date = ? AND status = ?", date, model.TripStatusScheduled).
		Preload("Trips.Vehicle").
		Preload("Trips.Driver").
		Preload("Trips.Bookings").
		Order("name ASC").
		Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}
