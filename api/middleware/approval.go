package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestorzap/gestorzap-backend/api/responses"
	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
	"github.com/gestorzap/gestorzap-backend/pkg/logger"
)

const pendingApprovalMessage = "account pending approval"

type profileSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// RequireApproved admits only approved accounts. The flag is read from the
// database on every request, so an admin flipping it takes effect on the
// user's very next call without a new token.
func RequireApproved(profiles profileSource, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile, err := loadProfile(r, profiles)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if !profile.IsApproved {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodePendingApproval, pendingApprovalMessage))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin admits only approved administrators.
func RequireAdmin(profiles profileSource, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile, err := loadProfile(r, profiles)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if !profile.IsApproved {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodePendingApproval, pendingApprovalMessage))
				return
			}
			if !profile.IsAdmin {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin access required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func loadProfile(r *http.Request, profiles profileSource) (*models.Profile, error) {
	if profiles == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "profile source unavailable")
	}

	raw := UserIDFromContext(r.Context())
	if raw == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id")
	}

	profile, err := profiles.FindByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No profile row yet means provisioning is still pending;
			// treat it the same as an unapproved account.
			return nil, pkgerrors.New(pkgerrors.CodePendingApproval, pendingApprovalMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	return profile, nil
}
