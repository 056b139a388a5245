package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestorzap/gestorzap-backend/internal/profiles"
	"github.com/gestorzap/gestorzap-backend/internal/users"
	pkgAuth "github.com/gestorzap/gestorzap-backend/pkg/auth"
	"github.com/gestorzap/gestorzap-backend/pkg/auth/session"
	"github.com/gestorzap/gestorzap-backend/pkg/config"
	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
	"github.com/gestorzap/gestorzap-backend/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"
const pendingApprovalMessage = "account pending approval"

// Service defines the behavior needed by the auth controller.
type Service interface {
	SignIn(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Confirm(ctx context.Context, token string) error
	Me(ctx context.Context, userID uuid.UUID) (*MeResponse, error)
}

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	ConfirmEmail(ctx context.Context, id uuid.UUID, at time.Time) error
}

type profileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
}

type confirmConsumer interface {
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}

type service struct {
	users    userRepository
	profiles profileRepository
	session  sessionManager
	confirm  confirmConsumer
	jwtCfg   config.JWTConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	ProfileRepo    profileRepository
	SessionManager sessionManager
	ConfirmTokens  confirmConsumer
	JWTConfig      config.JWTConfig
}

// NewService constructs a sign-in service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user repository is required")
	}
	if params.ProfileRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "profile repository is required")
	}
	if params.SessionManager == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session manager is required")
	}
	if params.ConfirmTokens == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "confirm token consumer is required")
	}
	return &service{
		users:    params.UserRepo,
		profiles: params.ProfileRepo,
		session:  params.SessionManager,
		confirm:  params.ConfirmTokens,
		jwtCfg:   params.JWTConfig,
	}, nil
}

// SignIn authenticates the credentials and enforces the approval gate. An
// unapproved account never receives tokens and no session is written.
func (s *service) SignIn(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Provisioning has not produced the profile row yet; the
			// account cannot have been approved either way.
			return nil, pkgerrors.New(pkgerrors.CodePendingApproval, pendingApprovalMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load profile")
	}
	if !profile.IsApproved {
		return nil, pkgerrors.New(pkgerrors.CodePendingApproval, pendingApprovalMessage)
	}

	now, err := s.recordLogin(ctx, user)
	if err != nil {
		return nil, err
	}

	accessID := session.NewAccessID()
	accessToken, err := pkgAuth.MintAccessToken(s.jwtCfg, now, pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	refreshToken, err := s.session.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store refresh token")
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         users.FromModel(user),
		Profile:      profiles.FromModel(profile),
	}, nil
}

// Confirm consumes a one-shot token and stamps the confirmation timestamp.
func (s *service) Confirm(ctx context.Context, token string) error {
	userID, err := s.confirm.Consume(ctx, strings.TrimSpace(token))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid confirmation token")
	}
	if err := s.users.ConfirmEmail(ctx, userID, time.Now().UTC()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "confirm email")
	}
	return nil
}

// Me returns the identity and profile fresh from the database, so approval
// flips show up without a new token.
func (s *service) Me(ctx context.Context, userID uuid.UUID) (*MeResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}

	resp := &MeResponse{User: users.FromModel(user)}
	profile, err := s.profiles.FindByID(ctx, userID)
	if err == nil {
		resp.Profile = profiles.FromModel(profile)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load profile")
	}
	return resp, nil
}

func (s *service) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	input := strings.TrimSpace(email)
	if input == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	user, err := s.users.FindByEmail(ctx, strings.ToLower(input))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	valid, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return user, nil
}

func (s *service) recordLogin(ctx context.Context, user *models.User) (time.Time, error) {
	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return time.Time{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update last login")
	}
	user.LastLoginAt = &now
	return now, nil
}
