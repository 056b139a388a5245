package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gestorzap/gestorzap-backend/api/responses"
	"github.com/gestorzap/gestorzap-backend/api/validators"
	"github.com/gestorzap/gestorzap-backend/internal/messages"
	pkgerrors "github.com/gestorzap/gestorzap-backend/pkg/errors"
	"github.com/gestorzap/gestorzap-backend/pkg/logger"
)

type messagePayload struct {
	ClientID *uuid.UUID `json:"cliente_id,omitempty"`
	Content  string     `json:"conteudo" validate:"required"`
	SentAt   *time.Time `json:"enviada_em,omitempty"`
}

// MessagesList returns every message, most recent first.
func MessagesList(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "messages service unavailable"))
			return
		}

		rows, err := svc.ListMessages(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// MessageCreate persists a new message row.
func MessageCreate(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "messages service unavailable"))
			return
		}

		var body messagePayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto := messages.CreateMessageDTO{
			ClientID: body.ClientID,
			Content:  body.Content,
		}
		if body.SentAt != nil {
			dto.SentAt = *body.SentAt
		}

		created, err := svc.CreateMessage(r.Context(), dto)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}
