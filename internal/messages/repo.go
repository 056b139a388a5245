package messages

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
)

// Repository persists message rows in the legacy mensagens table.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all messages, most recent first.
func (r *Repository) List(ctx context.Context) ([]models.Message, error) {
	var rows []models.Message
	if err := r.db.WithContext(ctx).
		Order("enviada_em DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// CountSentBetween counts messages whose enviada_em falls in [from, to).
func (r *Repository) CountSentBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("enviada_em >= ? AND enviada_em < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
