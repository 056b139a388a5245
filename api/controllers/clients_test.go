package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gestorzap/gestorzap-backend/internal/clients"
	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
	"github.com/gestorzap/gestorzap-backend/pkg/types"
)

type stubClientsService struct {
	listRows  []clients.ClientDTO
	created   *clients.ClientDTO
	createErr error
	updateErr error
	deleteErr error
	lastID    uuid.UUID
}

func (s *stubClientsService) ListClients(ctx context.Context) ([]clients.ClientDTO, error) {
	return s.listRows, nil
}

func (s *stubClientsService) CreateClient(ctx context.Context, dto clients.CreateClientDTO) (*clients.ClientDTO, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &clients.ClientDTO{ID: uuid.New(), Name: dto.Name, Email: dto.Email, Phone: dto.Phone}
	return s.created, nil
}

func (s *stubClientsService) UpdateClient(ctx context.Context, id uuid.UUID, dto clients.UpdateClientDTO) (*clients.ClientDTO, error) {
	s.lastID = id
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &clients.ClientDTO{ID: id, Name: dto.Name}, nil
}

func (s *stubClientsService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	s.lastID = id
	return s.deleteErr
}

func newClientsRouter(svc clients.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/clients", ClientsList(svc, nil))
	r.Post("/clients", ClientCreate(svc, nil))
	r.Put("/clients/{clientId}", ClientUpdate(svc, nil))
	r.Delete("/clients/{clientId}", ClientDelete(svc, nil))
	return r
}

func TestClientCreateSuccess(t *testing.T) {
	svc := &stubClientsService{}
	router := newClientsRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"nome":"Maria","telefone":"+55 11 91234-5678"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if svc.created == nil || svc.created.Name != "Maria" {
		t.Fatalf("expected client created, got %+v", svc.created)
	}
}

func TestClientCreateRejectsMissingName(t *testing.T) {
	svc := &stubClientsService{}
	router := newClientsRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"email":"x@example.com"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if svc.created != nil {
		t.Fatal("expected no service call for invalid payload")
	}

	var body types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	if body.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("expected validation code, got %s", body.Error.Code)
	}
}

func TestClientCreateRejectsUnknownFields(t *testing.T) {
	svc := &stubClientsService{}
	router := newClientsRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"nome":"Maria","cpf":"123"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestClientDeleteUnknownIDIsNotFound(t *testing.T) {
	svc := &stubClientsService{deleteErr: pkgerrors.New(pkgerrors.CodeNotFound, "client not found")}
	router := newClientsRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+uuid.NewString(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestClientUpdateParsesID(t *testing.T) {
	svc := &stubClientsService{}
	router := newClientsRouter(svc)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/clients/"+id.String(), strings.NewReader(`{"nome":"Maria"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastID != id {
		t.Fatalf("expected id %s got %s", id, svc.lastID)
	}
}

func TestClientUpdateRejectsMalformedID(t *testing.T) {
	svc := &stubClientsService{}
	router := newClientsRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/clients/not-a-uuid", strings.NewReader(`{"nome":"Maria"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
