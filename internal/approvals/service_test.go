package approvals

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
)

type stubProfileRepo struct {
	pending      []models.Profile
	approveRows  int64
	approveErr   error
	lastApproved uuid.UUID
}

func (s *stubProfileRepo) ListPending(ctx context.Context) ([]models.Profile, error) {
	return s.pending, nil
}

func (s *stubProfileRepo) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (int64, error) {
	if s.approveErr != nil {
		return 0, s.approveErr
	}
	s.lastApproved = id
	remaining := s.pending[:0]
	for _, p := range s.pending {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	s.pending = remaining
	return s.approveRows, nil
}

type stubUserRepo struct {
	deleteRows  int64
	deleteErr   error
	lastDeleted uuid.UUID
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	s.lastDeleted = id
	return s.deleteRows, nil
}

func newApprovalsService(t *testing.T, profileRepo *stubProfileRepo, userRepo *stubUserRepo) Service {
	t.Helper()
	if userRepo == nil {
		userRepo = &stubUserRepo{}
	}
	svc, err := NewService(ServiceParams{ProfileRepo: profileRepo, UserRepo: userRepo})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func TestApproveRemovesUserFromNextPendingFetch(t *testing.T) {
	first := models.Profile{ID: uuid.New(), Email: "primeiro@example.com", CreatedAt: time.Now().Add(-time.Hour)}
	second := models.Profile{ID: uuid.New(), Email: "segundo@example.com", CreatedAt: time.Now()}
	profileRepo := &stubProfileRepo{pending: []models.Profile{first, second}, approveRows: 1}

	svc := newApprovalsService(t, profileRepo, nil)
	ctx := context.Background()

	if err := svc.Approve(ctx, first.ID); err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}

	pending, err := svc.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending returned error: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected exactly one pending profile, got %d", len(pending))
	}
	if pending[0].ID != second.ID {
		t.Fatal("expected only the unapproved profile to remain")
	}
}

func TestApproveUnknownProfile(t *testing.T) {
	profileRepo := &stubProfileRepo{approveRows: 0}
	svc := newApprovalsService(t, profileRepo, nil)

	err := svc.Approve(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", err)
	}
}

func TestRejectDeletesIdentity(t *testing.T) {
	userRepo := &stubUserRepo{deleteRows: 1}
	svc := newApprovalsService(t, &stubProfileRepo{}, userRepo)

	id := uuid.New()
	if err := svc.Reject(context.Background(), id); err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if userRepo.lastDeleted != id {
		t.Fatalf("expected delete for %s, got %s", id, userRepo.lastDeleted)
	}
}

func TestRejectUnknownUser(t *testing.T) {
	svc := newApprovalsService(t, &stubProfileRepo{}, &stubUserRepo{deleteRows: 0})

	err := svc.Reject(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", err)
	}
}
