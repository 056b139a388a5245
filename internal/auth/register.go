package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestorzap/gestorzap-backend/internal/users"
	"github.com/gestorzap/gestorzap-backend/pkg/config"
	"github.com/gestorzap/gestorzap-backend/pkg/db"
	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
	"github.com/gestorzap/gestorzap-backend/pkg/security"
)

// RegisterService handles account creation and profile provisioning.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
}

type registerUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
}

type registerProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	Insert(ctx context.Context, id uuid.UUID, email string) (*models.Profile, error)
}

type confirmIssuer interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
}

// RegisterServiceParams packages the dependencies for the sign-up flow.
type RegisterServiceParams struct {
	UserRepo       registerUserRepository
	ProfileRepo    registerProfileRepository
	ConfirmTokens  confirmIssuer
	PasswordConfig config.PasswordConfig
	SignupConfig   config.SignupConfig
}

type registerService struct {
	users       registerUserRepository
	profiles    registerProfileRepository
	confirm     confirmIssuer
	passwordCfg config.PasswordConfig
	signupCfg   config.SignupConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.UserRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user repository is required")
	}
	if params.ProfileRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "profile repository is required")
	}
	if params.ConfirmTokens == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "confirm token issuer is required")
	}
	return &registerService{
		users:       params.UserRepo,
		profiles:    params.ProfileRepo,
		confirm:     params.ConfirmTokens,
		passwordCfg: params.PasswordConfig,
		signupCfg:   params.SignupConfig,
	}, nil
}

// Register creates the identity, waits for the provisioning trigger to
// produce the profile row, and falls back to inserting it directly when the
// trigger does not show up in time. The new account starts unapproved.
func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.Create(ctx, users.CreateUserDTO{
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  displayNameFromEmail(email),
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}

	if _, err := s.ensureProfile(ctx, user.ID, email); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "provision profile")
	}

	token, err := s.confirm.Issue(ctx, user.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "issue confirmation token")
	}

	return &RegisterResponse{
		User:              users.FromModel(user),
		ConfirmationToken: token,
	}, nil
}

// ensureProfile polls for the trigger-created row, then inserts one itself.
// A unique violation on the insert means the trigger won the race.
func (s *registerService) ensureProfile(ctx context.Context, id uuid.UUID, email string) (*models.Profile, error) {
	deadline := time.Now().Add(s.signupCfg.ProvisionPollTimeout)
	for {
		profile, err := s.profiles.FindByID(ctx, id)
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if !time.Now().Before(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.signupCfg.ProvisionPollInterval):
		}
	}

	profile, err := s.profiles.Insert(ctx, id, email)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return s.profiles.FindByID(ctx, id)
		}
		return nil, err
	}
	return profile, nil
}

func displayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
