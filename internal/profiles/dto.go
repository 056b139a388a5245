package profiles

import (
	"time"

	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	"github.com/google/uuid"
)

// ProfileDTO is the transport shape for a profile row.
type ProfileDTO struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	IsApproved bool      `json:"is_approved"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromModel(p *models.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		ID:         p.ID,
		Email:      p.Email,
		IsApproved: p.IsApproved,
		IsAdmin:    p.IsAdmin,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func FromModels(rows []models.Profile) []ProfileDTO {
	out := make([]ProfileDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
