package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleDriver UserRole = "driver"
	UserRoleParent UserRole = "parent"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	EmailVerified bool      `gorm:"not null;default:false" json:"email_verified"`
	Image         *string   `gorm:"type:text" json:"image"`
	Role          UserRole  `gorm:"type:user_role;not null;default:'parent'" json:"role"`
	PasswordHash  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Students []Student `gorm:"foreignKey:ParentID" json:"students,omitempty"`
}

func (User) TableName() string {
	return "users"
}
