package confirm

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	redisclient "github.com/gestorzap/gestorzap-backend/pkg/redis"
	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
)

const tokenBytes = 24

// ErrInvalidToken signals an unknown, expired, or already-consumed token.
var ErrInvalidToken = errors.New("invalid confirmation token")

type tokenStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	GetDel(ctx context.Context, key string) (string, error)
}

type tokenKeyer interface {
	ConfirmTokenKey(token string) string
}

// Issuer hands out one-shot email confirmation tokens backed by Redis.
type Issuer struct {
	store tokenStore
	keyer tokenKeyer
	ttl   time.Duration
}

// NewIssuer constructs a token issuer with the provided TTL.
func NewIssuer(client *redisclient.Client, ttl time.Duration) (*Issuer, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("confirmation token ttl must be positive")
	}
	return &Issuer{store: client, keyer: client, ttl: ttl}, nil
}

// Issue creates a token bound to the given user ID.
func (i *Issuer) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	if userID == uuid.Nil {
		return "", fmt.Errorf("user id is required")
	}
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generating confirmation token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)
	if err := i.store.Set(ctx, i.keyer.ConfirmTokenKey(token), userID.String(), i.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Consume validates and burns the token, returning the bound user ID.
func (i *Issuer) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	if strings.TrimSpace(token) == "" {
		return uuid.Nil, ErrInvalidToken
	}
	stored, err := i.store.GetDel(ctx, i.keyer.ConfirmTokenKey(token))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return uuid.Nil, ErrInvalidToken
		}
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(stored)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}
