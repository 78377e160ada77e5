package service

import (
	"testing"
	"time"

	"github.com/domyusuf/safeschooltransport/internal/model"
)

func TestBuildFleetStats(t *testing.T) {
	vehicles := []model.Vehicle{
		{Status: model.VehicleStatusActive},
		{Status: model.VehicleStatusActive},
		{Status: model.VehicleStatusMaintenance},
	}
	trips := []model.Trip{
		{Status: model.TripStatusActive, Bookings: []model.Booking{{}, {}}},
		{Status: model.TripStatusScheduled, Bookings: []model.Booking{{}}},
		{Status: model.TripStatusCompleted},
		{Status: model.TripStatusCancelled},
	}

	stats := buildFleetStats(vehicles, trips)

	if stats.ActiveTrips != 1 || stats.ScheduledTrips != 1 || stats.CompletedTrips != 1 {
		t.Errorf("unexpected trip counts: %+v", stats)
	}
	if stats.TotalTripsToday != 4 {
		t.Errorf("expected 4 total trips, got %d", stats.TotalTripsToday)
	}
	if stats.ActiveVehicles != 2 || stats.MaintenanceVehicles != 1 || stats.TotalVehicles != 3 {
		t.Errorf("unexpected vehicle counts: %+v", stats)
	}
	if stats.TotalBookingsToday != 3 {
		t.Errorf("expected 3 bookings today, got %d", stats.TotalBookingsToday)
	}
}

func TestBuildLiveBus(t *testing.T) {
	now := time.Now()
	lat, lng := 39.74, -104.99

	trip := model.Trip{
		Status:     model.TripStatusActive,
		CurrentLat: &lat,
		CurrentLng: &lng,
		Vehicle:    &model.Vehicle{BusNumber: "Bus 42"},
		Driver:     &model.User{Name: "Michael Driver"},
		Route:      &model.Route{Name: "Morning Route A"},
		Bookings: []model.Booking{
			{BoardedAt: &now},
			{BoardedAt: &now, DroppedAt: &now},
			{},
		},
	}

	bus := buildLiveBus(trip)

	if bus.BusNumber != "Bus 42" || bus.DriverName != "Michael Driver" || bus.RouteName != "Morning Route A" {
		t.Errorf("unexpected labels: %+v", bus)
	}
	if bus.PassengersCount != 1 {
		t.Errorf("expected 1 passenger currently aboard, got %d", bus.PassengersCount)
	}
	if bus.TotalPassengers != 3 {
		t.Errorf("expected 3 total passengers, got %d", bus.TotalPassengers)
	}
	if bus.Lat == nil || *bus.Lat != lat {
		t.Errorf("expected current position carried over")
	}
}

func TestBuildLiveBusUnassigned(t *testing.T) {
	bus := buildLiveBus(model.Trip{Status: model.TripStatusActive})
	if bus.BusNumber != "Unknown" {
		t.Errorf("expected Unknown bus number, got %q", bus.BusNumber)
	}
	if bus.DriverName != "Unassigned" {
		t.Errorf("expected Unassigned driver, got %q", bus.DriverName)
	}
}
