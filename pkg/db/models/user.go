package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents the canonical identity entity.
type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email            string     `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash     string     `gorm:"column:password_hash;not null"`
	DisplayName      string     `gorm:"column:display_name;not null"`
	EmailConfirmedAt *time.Time `gorm:"column:email_confirmed_at"`
	LastLoginAt      *time.Time `gorm:"column:last_login_at"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
