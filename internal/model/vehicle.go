package model

import (
	"time"

	"github.com/google/uuid"
)

type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

type Vehicle struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	LicensePlate string        `gorm:"type:varchar(32);not null;uniqueIndex" json:"license_plate"`
	BusNumber    string        `gorm:"type:varchar(32);not null" json:"bus_number"`
	Capacity     int           `gorm:"not null" json:"capacity"`
	Model        *string       `gorm:"type:varchar(64)" json:"model"`
	Year         *int          `json:"year"`
	Status       VehicleStatus `gorm:"type:vehicle_status;not null;default:'active'" json:"status"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	Trips []Trip `gorm:"foreignKey:VehicleID" json:"trips,omitempty"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
