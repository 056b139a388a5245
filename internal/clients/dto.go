package clients

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
)

// ClientDTO exposes a client record in API responses. JSON keys follow the
// legacy column names so the existing front end keeps working.
type ClientDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"telefone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateClientDTO holds creation-time data for a new client.
type CreateClientDTO struct {
	Name  string
	Email *string
	Phone *string
}

// UpdateClientDTO carries the replacement field set for an existing client.
type UpdateClientDTO struct {
	Name  string
	Email *string
	Phone *string
}

// FromModel maps the persisted client into a DTO.
func FromModel(m *models.Client) *ClientDTO {
	if m == nil {
		return nil
	}
	return &ClientDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromModels maps a list of clients into DTOs.
func FromModels(rows []models.Client) []ClientDTO {
	out := make([]ClientDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

// ToModel prepares the GORM model from the creation DTO.
func (c CreateClientDTO) ToModel() *models.Client {
	return &models.Client{
		ID:    uuid.New(),
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}
