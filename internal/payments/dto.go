package payments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	"github.com/gestorzap/gestorzap-backend/pkg/enums"
)

// PaymentDTO exposes a payment row. JSON keys follow the legacy column names.
type PaymentDTO struct {
	ID        uuid.UUID           `json:"id"`
	ClientID  *uuid.UUID          `json:"cliente_id,omitempty"`
	Amount    decimal.Decimal     `json:"valor"`
	Status    enums.PaymentStatus `json:"status"`
	PaidAt    time.Time           `json:"data_pagamento"`
	CreatedAt time.Time           `json:"created_at"`
}

// CreatePaymentDTO holds creation-time data for a payment.
type CreatePaymentDTO struct {
	ClientID *uuid.UUID
	Amount   decimal.Decimal
	Status   enums.PaymentStatus
	PaidAt   time.Time
}

// FromModel maps the persisted payment into a DTO.
func FromModel(m *models.Payment) *PaymentDTO {
	if m == nil {
		return nil
	}
	return &PaymentDTO{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Amount:    m.Amount,
		Status:    m.Status,
		PaidAt:    m.PaidAt,
		CreatedAt: m.CreatedAt,
	}
}

// FromModels maps a list of payments into DTOs.
func FromModels(rows []models.Payment) []PaymentDTO {
	out := make([]PaymentDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

// ToModel prepares the GORM model from the creation DTO.
func (c CreatePaymentDTO) ToModel() *models.Payment {
	return &models.Payment{
		ID:       uuid.New(),
		ClientID: c.ClientID,
		Amount:   c.Amount,
		Status:   c.Status,
		PaidAt:   c.PaidAt,
	}
}
