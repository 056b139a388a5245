package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
)

// StatsDTO is the aggregate snapshot rendered on the dashboard.
type StatsDTO struct {
	TotalClients      int64           `json:"total_clients"`
	MonthlyRevenue    decimal.Decimal `json:"monthly_revenue"`
	MessagesSentToday int64           `json:"messages_sent_today"`
}

// ClientCounter reports the total number of clients.
type ClientCounter interface {
	Count(ctx context.Context) (int64, error)
}

// RevenueSource reports month-to-date revenue.
type RevenueSource interface {
	MonthToDateRevenue(ctx context.Context, now time.Time) (decimal.Decimal, error)
}

// MessageCounter reports messages sent during the current day.
type MessageCounter interface {
	CountSentToday(ctx context.Context, now time.Time) (int64, error)
}

// ServiceParams groups dependencies for the dashboard service.
type ServiceParams struct {
	Clients  ClientCounter
	Payments RevenueSource
	Messages MessageCounter
	Now      func() time.Time
}

// Service exposes the dashboard aggregates.
type Service interface {
	Stats(ctx context.Context) (StatsDTO, error)
}

type service struct {
	clients  ClientCounter
	payments RevenueSource
	messages MessageCounter
	now      func() time.Time
}

// NewService builds a dashboard service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Clients == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client counter is required")
	}
	if params.Payments == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "revenue source is required")
	}
	if params.Messages == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message counter is required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		clients:  params.Clients,
		payments: params.Payments,
		messages: params.Messages,
		now:      params.Now,
	}, nil
}

// Stats assembles the dashboard snapshot: total clients, month-to-date
// revenue from paid payments, and messages sent today.
func (s *service) Stats(ctx context.Context) (StatsDTO, error) {
	now := s.now()

	totalClients, err := s.clients.Count(ctx)
	if err != nil {
		return StatsDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count clients")
	}

	revenue, err := s.payments.MonthToDateRevenue(ctx, now)
	if err != nil {
		return StatsDTO{}, err
	}

	sentToday, err := s.messages.CountSentToday(ctx, now)
	if err != nil {
		return StatsDTO{}, err
	}

	return StatsDTO{
		TotalClients:      totalClients,
		MonthlyRevenue:    revenue,
		MessagesSentToday: sentToday,
	}, nil
}
