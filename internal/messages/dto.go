package messages

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
)

// MessageDTO exposes a message row. JSON keys follow the legacy column names.
type MessageDTO struct {
	ID       uuid.UUID  `json:"id"`
	ClientID *uuid.UUID `json:"cliente_id,omitempty"`
	Content  string     `json:"conteudo"`
	SentAt   time.Time  `json:"enviada_em"`
}

// CreateMessageDTO holds creation-time data for a message.
type CreateMessageDTO struct {
	ClientID *uuid.UUID
	Content  string
	SentAt   time.Time
}

// FromModel maps the persisted message into a DTO.
func FromModel(m *models.Message) *MessageDTO {
	if m == nil {
		return nil
	}
	return &MessageDTO{
		ID:       m.ID,
		ClientID: m.ClientID,
		Content:  m.Content,
		SentAt:   m.SentAt,
	}
}

// FromModels maps a list of messages into DTOs.
func FromModels(rows []models.Message) []MessageDTO {
	out := make([]MessageDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

// ToModel prepares the GORM model from the creation DTO.
func (c CreateMessageDTO) ToModel() *models.Message {
	return &models.Message{
		ID:       uuid.New(),
		ClientID: c.ClientID,
		Content:  c.Content,
		SentAt:   c.SentAt,
	}
}
