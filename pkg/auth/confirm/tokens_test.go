package confirm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
)

type mockStore struct {
	data map[string]string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *mockStore) GetDel(ctx context.Context, key string) (string, error) {
	val, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	delete(m.data, key)
	return val, nil
}

func (m *mockStore) ConfirmTokenKey(token string) string {
	return fmt.Sprintf("confirm:%s", token)
}

func TestIssueAndConsume(t *testing.T) {
	store := newMockStore()
	issuer := &Issuer{store: store, keyer: store, ttl: time.Hour}
	ctx := context.Background()
	userID := uuid.New()

	token, err := issuer.Issue(ctx, userID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := issuer.Consume(ctx, token)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if got != userID {
		t.Fatalf("expected user %s, got %s", userID, got)
	}

	// one-shot: a second consume must fail
	if _, err := issuer.Consume(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken on reuse, got %v", err)
	}
}

func TestConsumeUnknownToken(t *testing.T) {
	store := newMockStore()
	issuer := &Issuer{store: store, keyer: store, ttl: time.Hour}

	if _, err := issuer.Consume(context.Background(), "nope"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
