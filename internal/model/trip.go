package model

import (
	"time"

	"github.com/google/uuid"
)

type TripStatus string

const (
	TripStatusScheduled TripStatus = "scheduled"
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// tripTransitions is the directed graph of allowed status changes.
// completed and cancelled are terminal.
var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusScheduled: {TripStatusActive, TripStatusCancelled},
	TripStatusActive:    {TripStatusCompleted, TripStatusCancelled},
	TripStatusCompleted: {},
	TripStatusCancelled: {},
}

func (s TripStatus) Valid() bool {
	_, ok := tripTransitions[s]
	return ok
}

func (s TripStatus) CanTransitionTo(to TripStatus) bool {
	allowed, ok := tripTransitions[s]
	if !ok {
		return false
	}
	for _, next := range allowed {
		if next == to {
			return true
		}
	}
	return false
}

// Trip is one run of a route on a calendar date. Date is an ISO
// YYYY-MM-DD string, ScheduledStartTime an HH:MM string.
type Trip struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	RouteID            uuid.UUID  `gorm:"type:uuid;not null" json:"route_id"`
	DriverID           *uuid.UUID `gorm:"type:uuid" json:"driver_id"`
	VehicleID          *uuid.UUID `gorm:"type:uuid" json:"vehicle_id"`
	Date               string     `gorm:"type:varchar(10);not null" json:"date"`
	ScheduledStartTime *string    `gorm:"type:varchar(5)" json:"scheduled_start_time"`
	Status             TripStatus `gorm:"type:trip_status;not null;default:'scheduled'" json:"status"`
	CurrentLat         *float64   `json:"current_lat"`
	CurrentLng         *float64   `json:"current_lng"`
	StartedAt          *time.Time `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Route     *Route     `gorm:"foreignKey:RouteID" json:"route,omitempty"`
	Driver    *User      `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	Vehicle   *Vehicle   `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Bookings  []Booking  `gorm:"foreignKey:TripID" json:"bookings,omitempty"`
	Incidents []Incident `gorm:"foreignKey:TripID" json:"incidents,omitempty"`
}

func (Trip) TableName() string {
	return "trips"
}

// Capacity is the seat count of the assigned vehicle, 0 when none is
// assigned yet.
func (t *Trip) Capacity() int {
	if t.Vehicle == nil {
		return 0
	}
	return t.Vehicle.Capacity
}
