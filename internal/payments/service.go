package payments

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
)

// Store is the persistence surface the service needs from the repository.
type Store interface {
	List(ctx context.Context) ([]models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
	SumPaidSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}

// ServiceParams groups dependencies for the payments service.
type ServiceParams struct {
	Repo Store
}

// Service exposes business rules for payment records.
type Service interface {
	ListPayments(ctx context.Context) ([]PaymentDTO, error)
	CreatePayment(ctx context.Context, dto CreatePaymentDTO) (*PaymentDTO, error)
	MonthToDateRevenue(ctx context.Context, now time.Time) (decimal.Decimal, error)
}

type service struct {
	repo Store
}

// NewService builds a payments service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payments repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// ListPayments returns every payment, most recent first.
func (s *service) ListPayments(ctx context.Context) ([]PaymentDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payments")
	}
	return FromModels(rows), nil
}

// CreatePayment validates and persists a payment row.
func (s *service) CreatePayment(ctx context.Context, dto CreatePaymentDTO) (*PaymentDTO, error) {
	if !dto.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be pago, pendente or cancelado")
	}
	if dto.Amount.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "valor must not be negative")
	}
	if dto.PaidAt.IsZero() {
		dto.PaidAt = time.Now().UTC()
	}

	model := dto.ToModel()
	if err := s.repo.Create(ctx, model); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create payment")
	}
	return FromModel(model), nil
}

// MonthToDateRevenue sums paid payments from the first instant of now's
// month onward.
func (s *service) MonthToDateRevenue(ctx context.Context, now time.Time) (decimal.Decimal, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	total, err := s.repo.SumPaidSince(ctx, monthStart)
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum revenue")
	}
	return total, nil
}
