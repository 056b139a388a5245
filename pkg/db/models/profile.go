package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile extends a User with the approval and admin flags. The row shares
// its primary key with the owning user and is normally created by the
// provisioning trigger when the user row is inserted.
type Profile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"type:text;not null"`
	IsApproved bool      `gorm:"column:is_approved;not null;default:false"`
	IsAdmin    bool      `gorm:"column:is_admin;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`

	User *User `gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE"`
}
