package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is a managed customer record. Column names follow the product's
// existing schema, which predates this service.
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"column:nome;type:text;not null"`
	Email     *string   `gorm:"column:email;type:text"`
	Phone     *string   `gorm:"column:telefone;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName maps the model onto the legacy table.
func (Client) TableName() string {
	return "clientes"
}
