package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/gestorzap/gestorzap-backend/internal/auth"
	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
	"github.com/gestorzap/gestorzap-backend/pkg/types"
)

type stubAuthService struct {
	signInResp *auth.LoginResponse
	signInErr  error
	confirmErr error
	meResp     *auth.MeResponse
	meErr      error
	lastEmail  string
}

func (s *stubAuthService) SignIn(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	s.lastEmail = req.Email
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	return s.signInResp, nil
}

func (s *stubAuthService) Confirm(ctx context.Context, token string) error {
	return s.confirmErr
}

func (s *stubAuthService) Me(ctx context.Context, userID uuid.UUID) (*auth.MeResponse, error) {
	if s.meErr != nil {
		return nil, s.meErr
	}
	return s.meResp, nil
}

func TestAuthLoginSuccess(t *testing.T) {
	svc := &stubAuthService{signInResp: &auth.LoginResponse{AccessToken: "access", RefreshToken: "refresh"}}
	handler := AuthLogin(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ana@example.com","password":"s3cretpass"}`))
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastEmail != "ana@example.com" {
		t.Fatalf("expected email forwarded, got %q", svc.lastEmail)
	}
}

func TestAuthLoginPendingApprovalEnvelope(t *testing.T) {
	svc := &stubAuthService{
		signInErr: pkgerrors.New(pkgerrors.CodePendingApproval, "profile not approved for user 42"),
	}
	handler := AuthLogin(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ana@example.com","password":"s3cretpass"}`))
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}

	var body types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	if body.Error.Code != string(pkgerrors.CodePendingApproval) {
		t.Fatalf("expected pending approval code, got %s", body.Error.Code)
	}
	if body.Error.Message != "account pending approval" {
		t.Fatalf("internal detail leaked to the public message: %q", body.Error.Message)
	}
}

func TestAuthLoginRejectsInvalidPayload(t *testing.T) {
	svc := &stubAuthService{}
	handler := AuthLogin(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"not-an-email","password":"s3cretpass"}`))
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if svc.lastEmail != "" {
		t.Fatal("expected no service call for invalid payload")
	}
}

func TestAuthConfirmInvalidToken(t *testing.T) {
	svc := &stubAuthService{confirmErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid confirmation token")}
	handler := AuthConfirm(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/confirm", strings.NewReader(`{"token":"expired"}`))
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
