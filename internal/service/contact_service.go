package service

import (
	"context"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

var contactRequiredFields = []string{"name", "email", "subject", "message"}

// ContactService appends visitor messages to the immutable contact log.
type ContactService struct {
	contactRepo repository.ContactRepository
	// now is injectable so tests can pin the timestamp.
	now func() time.Time
}

// AppendContactInput carries the fields of a contact submission.
type AppendContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NewContactService creates a new contact message service.
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		now:         time.Now,
	}
}

// Append validates all four required fields, stamps the message with the
// current UTC time, and persists it. Messages are never updated or deleted.
func (s *ContactService) Append(ctx context.Context, in AppendContactInput) (*models.ContactMessage, error) {
	missing := validation.MissingFields(map[string]any{
		"name":    in.Name,
		"email":   in.Email,
		"subject": in.Subject,
		"message": in.Message,
	}, contactRequiredFields)
	if len(missing) > 0 {
		return nil, models.NewMissingFieldsError(missing)
	}

	message := &models.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.contactRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// List returns the contact log newest first for the admin inbox.
func (s *ContactService) List(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.contactRepo.List(ctx)
}
