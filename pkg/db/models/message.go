package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a WhatsApp message record counted by the dashboard.
type Message struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID *uuid.UUID `gorm:"column:cliente_id;type:uuid"`
	Content  string     `gorm:"column:conteudo;type:text;not null"`
	SentAt   time.Time  `gorm:"column:enviada_em;not null"`

	Client *Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Message) TableName() string {
	return "mensagens"
}
