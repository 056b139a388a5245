package auth

import (
	"github.com/gestorzap/gestorzap-backend/internal/profiles"
	"github.com/gestorzap/gestorzap-backend/internal/users"
)

// LoginRequest contains the payload for the sign-in endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the token pair plus the account snapshot.
type LoginResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	User         *users.UserDTO       `json:"user"`
	Profile      *profiles.ProfileDTO `json:"profile"`
}

// RegisterRequest contains the payload for the sign-up endpoint.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterResponse reports the created identity. No tokens are issued: the
// account still needs admin approval before it can sign in.
type RegisterResponse struct {
	User *users.UserDTO `json:"user"`

	// TODO: deliver the token by email once an outbound mailer exists.
	ConfirmationToken string `json:"confirmation_token"`
}

// ConfirmRequest carries the one-shot email confirmation token.
type ConfirmRequest struct {
	Token string `json:"token" validate:"required"`
}

// MeResponse is the fresh identity+profile snapshot for the signed-in user.
type MeResponse struct {
	User    *users.UserDTO       `json:"user"`
	Profile *profiles.ProfileDTO `json:"profile"`
}
