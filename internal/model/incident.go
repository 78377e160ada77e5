package model

import (
	"time"

	"github.com/google/uuid"
)

type IncidentSeverity string

const (
	IncidentSeverityLow      IncidentSeverity = "low"
	IncidentSeverityMedium   IncidentSeverity = "medium"
	IncidentSeverityHigh     IncidentSeverity = "high"
	IncidentSeverityCritical IncidentSeverity = "critical"
)

func (s IncidentSeverity) Valid() bool {
	switch s {
	case IncidentSeverityLow, IncidentSeverityMedium, IncidentSeverityHigh, IncidentSeverityCritical:
		return true
	}
	return false
}

type Incident struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TripID       uuid.UUID        `gorm:"type:uuid;not null" json:"trip_id"`
	ReportedByID uuid.UUID        `gorm:"type:uuid;not null" json:"reported_by_id"`
	Description  string           `gorm:"type:text;not null" json:"description"`
	Severity     IncidentSeverity `gorm:"type:incident_severity;not null;default:'low'" json:"severity"`
	Location     *string          `gorm:"type:text" json:"location"`
	Lat          *float64         `json:"lat"`
	Lng          *float64         `json:"lng"`
	ResolvedAt   *time.Time       `json:"resolved_at"`
	ReportedAt   time.Time        `gorm:"autoCreateTime" json:"reported_at"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`

	Trip       *Trip `gorm:"foreignKey:TripID" json:"trip,omitempty"`
	ReportedBy *User `gorm:"foreignKey:ReportedByID" json:"reported_by,omitempty"`
}

func (Incident) TableName() string {
	return "incidents"
}
