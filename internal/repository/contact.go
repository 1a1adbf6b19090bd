package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/models"
)

// ContactRepository defines data operations for the append-only contact
// message log. There is deliberately no update or delete.
type ContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	List(ctx context.Context) ([]*models.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact message repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// List returns messages newest first for the admin inbox.
func (r *contactRepository) List(ctx context.Context) ([]*models.ContactMessage, error) {
	messages := []*models.ContactMessage{}
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&messages).Error
	return messages, err
}
