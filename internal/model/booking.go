package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Booking links a student and their parent to a seat on a trip.
// Cancelled bookings are kept as rows; the seat is freed by excluding
// them from availability counts.
type Booking struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TripID        uuid.UUID     `gorm:"type:uuid;not null" json:"trip_id"`
	StudentID     uuid.UUID     `gorm:"type:uuid;not null" json:"student_id"`
	ParentID      uuid.UUID     `gorm:"type:uuid;not null" json:"parent_id"`
	PickupStopID  *uuid.UUID    `gorm:"type:uuid" json:"pickup_stop_id"`
	DropoffStopID *uuid.UUID    `gorm:"type:uuid" json:"dropoff_stop_id"`
	Status        BookingStatus `gorm:"type:booking_status;not null;default:'pending'" json:"status"`
	SeatNumber    *int          `json:"seat_number"`
	BoardedAt     *time.Time    `json:"boarded_at"`
	DroppedAt     *time.Time    `json:"dropped_at"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	Trip        *Trip    `gorm:"foreignKey:TripID" json:"trip,omitempty"`
	Student     *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Parent      *User    `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	PickupStop  *Stop    `gorm:"foreignKey:PickupStopID" json:"pickup_stop,omitempty"`
	DropoffStop *Stop    `gorm:"foreignKey:DropoffStopID" json:"dropoff_stop,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// Aboard reports whether the passenger is currently on the bus.
func (b *Booking) Aboard() bool {
	return b.BoardedAt != nil && b.DroppedAt == nil
}
