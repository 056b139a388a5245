package models

import (
	"time"

	"github.com/gestorzap/gestorzap-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is a revenue ledger row used by the dashboard aggregates.
type Payment struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ClientID  *uuid.UUID          `gorm:"column:cliente_id;type:uuid"`
	Amount    decimal.Decimal     `gorm:"column:valor;type:numeric(12,2);not null"`
	Status    enums.PaymentStatus `gorm:"column:status;type:text;not null"`
	PaidAt    time.Time           `gorm:"column:data_pagamento;not null"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`

	Client *Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Payment) TableName() string {
	return "pagamentos"
}
