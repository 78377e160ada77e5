package model

import (
	"time"

	"github.com/google/uuid"
)

type Route struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	StartPoint        string    `gorm:"type:varchar(255);not null" json:"start_point"`
	EndPoint          string    `gorm:"type:varchar(255);not null" json:"end_point"`
	EstimatedDuration int       `gorm:"not null" json:"estimated_duration"` // minutes
	IsActive          bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Stops []Stop `gorm:"foreignKey:RouteID" json:"stops,omitempty"`
	Trips []Trip `gorm:"foreignKey:RouteID" json:"trips,omitempty"`
}

func (Route) TableName() string {
	return "routes"
}

// Stop is one point on a route. OrderIndex is unique within the route and
// defines traversal order for drivers.
type Stop struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	RouteID       uuid.UUID `gorm:"type:uuid;not null" json:"route_id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Lat           float64   `gorm:"not null" json:"lat"`
	Lng           float64   `gorm:"not null" json:"lng"`
	OrderIndex    int       `gorm:"not null" json:"order_index"`
	EstimatedTime *string   `gorm:"type:varchar(16)" json:"estimated_time"` // e.g. "08:30 AM"
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Stop) TableName() string {
	return "stops"
}
