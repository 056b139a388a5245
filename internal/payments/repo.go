package payments

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	"github.com/gestorzap/gestorzap-backend/pkg/enums"
)

// Repository persists payment rows in the legacy pagamentos table.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all payments, most recent first.
func (r *Repository) List(ctx context.Context) ([]models.Payment, error) {
	var rows []models.Payment
	if err := r.db.WithContext(ctx).
		Order("data_pagamento DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// SumPaidSince totals the valor of paid payments dated at or after since.
// Only rows with status pago count toward revenue.
func (r *Repository) SumPaidSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("COALESCE(SUM(valor), 0)").
		Where("status = ? AND data_pagamento >= ?", enums.PaymentStatusPaid, since).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
