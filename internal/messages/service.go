package messages

import (
	"context"
	"strings"
	"time"

	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
)

// Store is the persistence surface the service needs from the repository.
type Store interface {
	List(ctx context.Context) ([]models.Message, error)
	Create(ctx context.Context, message *models.Message) error
	CountSentBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// ServiceParams groups dependencies for the messages service.
type ServiceParams struct {
	Repo Store
}

// Service exposes business rules for message records.
type Service interface {
	ListMessages(ctx context.Context) ([]MessageDTO, error)
	CreateMessage(ctx context.Context, dto CreateMessageDTO) (*MessageDTO, error)
	CountSentToday(ctx context.Context, now time.Time) (int64, error)
}

type service struct {
	repo Store
}

// NewService builds a messages service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "messages repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// ListMessages returns every message, most recent first.
func (s *service) ListMessages(ctx context.Context) ([]MessageDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list messages")
	}
	return FromModels(rows), nil
}

// CreateMessage validates and persists a message row.
func (s *service) CreateMessage(ctx context.Context, dto CreateMessageDTO) (*MessageDTO, error) {
	dto.Content = strings.TrimSpace(dto.Content)
	if dto.Content == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "conteudo is required")
	}
	if dto.SentAt.IsZero() {
		dto.SentAt = time.Now().UTC()
	}

	model := dto.ToModel()
	if err := s.repo.Create(ctx, model); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create message")
	}
	return FromModel(model), nil
}

// CountSentToday counts messages sent during now's calendar day.
func (s *service) CountSentToday(ctx context.Context, now time.Time) (int64, error) {
	// Next midnight via time.Date so DST transitions keep the bound exact.
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	count, err := s.repo.CountSentBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count messages")
	}
	return count, nil
}
