package model

import (
	"time"

	"github.com/google/uuid"
)

// TripAvailability is a scheduled trip annotated with seat counts for
// the parent booking flow.
type TripAvailability struct {
	Trip           Trip `json:"trip"`
	BookedSeats    int  `json:"booked_seats"`
	AvailableSeats int  `json:"available_seats"`
	IsFull         bool `json:"is_full"`
}

// RouteAvailability is an active route with its scheduled trips for one
// date, each annotated with availability.
type RouteAvailability struct {
	Route Route              `json:"route"`
	Trips []TripAvailability `json:"trips"`
}

type BookingReceipt struct {
	BookingID  uuid.UUID `json:"booking_id"`
	SeatNumber int       `json:"seat_number"`
}

// ParentBookings splits a parent's bookings the way the dashboard shows
// them: upcoming keeps future non-cancelled rows, past keeps everything
// before today plus completed rows.
type ParentBookings struct {
	Upcoming []Booking `json:"upcoming"`
	Past     []Booking `json:"past"`
	All      []Booking `json:"all"`
}

type FleetStats struct {
	ActiveTrips         int `json:"active_trips"`
	ScheduledTrips      int `json:"scheduled_trips"`
	CompletedTrips      int `json:"completed_trips"`
	TotalTripsToday     int `json:"total_trips_today"`
	ActiveVehicles      int `json:"active_vehicles"`
	MaintenanceVehicles int `json:"maintenance_vehicles"`
	TotalVehicles       int `json:"total_vehicles"`
	TotalBookingsToday  int `json:"total_bookings_today"`
}

type FleetStatus struct {
	Stats           FleetStats `json:"stats"`
	TodayTrips      []Trip     `json:"today_trips"`
	Vehicles        []Vehicle  `json:"vehicles"`
	RecentIncidents []Incident `json:"recent_incidents"`
}

// LiveBus is one active trip on the admin live map.
type LiveBus struct {
	TripID          uuid.UUID `json:"trip_id"`
	BusNumber       string    `json:"bus_number"`
	DriverName      string    `json:"driver_name"`
	RouteName       string    `json:"route_name"`
	Status          TripStatus `json:"status"`
	Lat             *float64  `json:"lat"`
	Lng             *float64  `json:"lng"`
	PassengersCount int       `json:"passengers_count"`
	TotalPassengers int       `json:"total_passengers"`
}

type AuthSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}
