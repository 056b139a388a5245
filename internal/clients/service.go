package clients

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
)

// Store is the persistence surface the service needs from the repository.
type Store interface {
	List(ctx context.Context) ([]models.Client, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Save(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// ServiceParams groups dependencies for the clients service.
type ServiceParams struct {
	Repo Store
}

// Service exposes business rules for client management.
type Service interface {
	ListClients(ctx context.Context) ([]ClientDTO, error)
	CreateClient(ctx context.Context, dto CreateClientDTO) (*ClientDTO, error)
	UpdateClient(ctx context.Context, id uuid.UUID, dto UpdateClientDTO) (*ClientDTO, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Store
}

// NewService builds a clients service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "clients repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// ListClients returns every client, newest first.
func (s *service) ListClients(ctx context.Context) ([]ClientDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list clients")
	}
	return FromModels(rows), nil
}

// CreateClient validates the payload and persists a new client. Name is
// required; the check runs before any repository call.
func (s *service) CreateClient(ctx context.Context, dto CreateClientDTO) (*ClientDTO, error) {
	dto.Name = strings.TrimSpace(dto.Name)
	if dto.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nome is required")
	}

	model := dto.ToModel()
	if err := s.repo.Create(ctx, model); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create client")
	}
	return FromModel(model), nil
}

// UpdateClient replaces the editable fields of an existing client.
func (s *service) UpdateClient(ctx context.Context, id uuid.UUID, dto UpdateClientDTO) (*ClientDTO, error) {
	dto.Name = strings.TrimSpace(dto.Name)
	if dto.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nome is required")
	}
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client id is required")
	}

	model, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "client not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load client")
	}

	model.Name = dto.Name
	model.Email = dto.Email
	model.Phone = dto.Phone
	if err := s.repo.Save(ctx, model); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update client")
	}
	return FromModel(model), nil
}

// DeleteClient removes a client. Deleting an unknown id is reported as not
// found rather than silently succeeding.
func (s *service) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "client id is required")
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete client")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "client not found")
	}
	return nil
}
