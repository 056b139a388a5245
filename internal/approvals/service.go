package approvals

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestorzap/gestorzap-backend/internal/profiles"
	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
)

type profileRepository interface {
	ListPending(ctx context.Context) ([]models.Profile, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) (int64, error)
}

type userRepository interface {
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// ServiceParams groups dependencies for the approvals service.
type ServiceParams struct {
	ProfileRepo profileRepository
	UserRepo    userRepository
}

// Service exposes the admin approval workflow.
type Service interface {
	ListPending(ctx context.Context) ([]profiles.ProfileDTO, error)
	Approve(ctx context.Context, userID uuid.UUID) error
	Reject(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	profiles profileRepository
	users    userRepository
}

// NewService builds an approvals service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ProfileRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "profile repository is required")
	}
	if params.UserRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user repository is required")
	}
	return &service{profiles: params.ProfileRepo, users: params.UserRepo}, nil
}

// ListPending returns profiles awaiting approval, oldest first.
func (s *service) ListPending(ctx context.Context) ([]profiles.ProfileDTO, error) {
	rows, err := s.profiles.ListPending(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pending profiles")
	}
	return profiles.FromModels(rows), nil
}

// Approve flips the approval flag. The change takes effect on the user's
// next request; no re-login is needed.
func (s *service) Approve(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	rows, err := s.profiles.SetApproved(ctx, userID, true)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "approve profile")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
	}
	return nil
}

// Reject removes the identity outright. The profile row cascades away with
// the user.
func (s *service) Reject(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	rows, err := s.users.Delete(ctx, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete user")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return nil
}
