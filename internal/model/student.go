package model

import (
	"time"

	"github.com/google/uuid"
)

// Student belongs to exactly one parent user and is removed with it.
type Student struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ParentID   uuid.UUID `gorm:"type:uuid;not null" json:"parent_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	SchoolName string    `gorm:"type:varchar(255);not null" json:"school_name"`
	Grade      string    `gorm:"type:varchar(32);not null" json:"grade"`
	PhotoURL   *string   `gorm:"type:text" json:"photo_url"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Parent *User `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
}

func (Student) TableName() string {
	return "students"
}
