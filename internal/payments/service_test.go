package payments

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	"github.com/gestorzap/gestorzap-backend/pkg/enums"
	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
)

type stubPaymentRepo struct {
	listRows  []models.Payment
	listErr   error
	createErr error
	created   *models.Payment
	sum       decimal.Decimal
	sumErr    error
	lastSince time.Time
}

func (s *stubPaymentRepo) List(ctx context.Context) ([]models.Payment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listRows, nil
}

func (s *stubPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = payment
	return nil
}

func (s *stubPaymentRepo) SumPaidSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	s.lastSince = since
	if s.sumErr != nil {
		return decimal.Zero, s.sumErr
	}
	return s.sum, nil
}

func newPaymentsService(t *testing.T, repo *stubPaymentRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func TestCreatePaymentRejectsUnknownStatus(t *testing.T) {
	repo := &stubPaymentRepo{}
	svc := newPaymentsService(t, repo)

	_, err := svc.CreatePayment(context.Background(), CreatePaymentDTO{
		Amount: decimal.RequireFromString("10.00"),
		Status: enums.PaymentStatus("quitado"),
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if repo.created != nil {
		t.Fatal("expected no payment persisted")
	}
}

func TestCreatePaymentRejectsNegativeAmount(t *testing.T) {
	repo := &stubPaymentRepo{}
	svc := newPaymentsService(t, repo)

	_, err := svc.CreatePayment(context.Background(), CreatePaymentDTO{
		Amount: decimal.RequireFromString("-1"),
		Status: enums.PaymentStatusPaid,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestCreatePaymentDefaultsPaidAt(t *testing.T) {
	repo := &stubPaymentRepo{}
	svc := newPaymentsService(t, repo)

	dto, err := svc.CreatePayment(context.Background(), CreatePaymentDTO{
		Amount: decimal.RequireFromString("10.00"),
		Status: enums.PaymentStatusPending,
	})
	if err != nil {
		t.Fatalf("CreatePayment returned error: %v", err)
	}
	if dto.PaidAt.IsZero() {
		t.Fatal("expected data_pagamento defaulted")
	}
}

func TestMonthToDateRevenueUsesMonthStart(t *testing.T) {
	repo := &stubPaymentRepo{sum: decimal.RequireFromString("350.50")}
	svc := newPaymentsService(t, repo)

	now := time.Date(2025, time.June, 15, 18, 30, 0, 0, time.UTC)
	total, err := svc.MonthToDateRevenue(context.Background(), now)
	if err != nil {
		t.Fatalf("MonthToDateRevenue returned error: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("350.50")) {
		t.Fatalf("unexpected total %s", total)
	}

	wantStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	if !repo.lastSince.Equal(wantStart) {
		t.Fatalf("expected since %s, got %s", wantStart, repo.lastSince)
	}
}
