package profiles

import (
	"context"

	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes profile persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a profiles repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID retrieves the profile for the given user ID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Insert writes a profile row directly. Used as the compensating action when
// the provisioning trigger has not produced the row yet.
func (r *Repository) Insert(ctx context.Context, id uuid.UUID, email string) (*models.Profile, error) {
	profile := &models.Profile{
		ID:    id,
		Email: email,
	}
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// ListPending returns profiles still waiting for approval, oldest first.
func (r *Repository) ListPending(ctx context.Context) ([]models.Profile, error) {
	var rows []models.Profile
	if err := r.db.WithContext(ctx).
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SetApproved flips the approval flag and reports how many rows changed.
func (r *Repository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		UpdateColumn("is_approved", approved)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
