package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

var experienceRequiredFields = []string{"company", "role", "start_date", "end_date", "location", "highlights"}

// ExperienceService handles experience CRUD. Highlights arrive as an ordered
// list (or a legacy pre-joined string) and are stored delimiter-joined.
type ExperienceService struct {
	experienceRepo repository.ExperienceRepository
}

// CreateExperienceInput carries the fields for a new experience entry.
type CreateExperienceInput struct {
	Company    string                `json:"company"`
	Role       string                `json:"role"`
	StartDate  string                `json:"start_date"`
	EndDate    string                `json:"end_date"`
	Location   string                `json:"location"`
	Highlights validation.Highlights `json:"highlights"`
}

// UpdateExperienceInput carries a sparse update: nil fields are left untouched.
type UpdateExperienceInput struct {
	Company    *string                `json:"company"`
	Role       *string                `json:"role"`
	StartDate  *string                `json:"start_date"`
	EndDate    *string                `json:"end_date"`
	Location   *string                `json:"location"`
	Highlights *validation.Highlights `json:"highlights"`
}

func (in UpdateExperienceInput) apply(experience *models.Experience) {
	setters := []struct {
		src *string
		dst *string
	}{
		{in.Company, &experience.Company},
		{in.Role, &experience.Role},
		{in.StartDate, &experience.StartDate},
		{in.EndDate, &experience.EndDate},
		{in.Location, &experience.Location},
	}
	for _, s := range setters {
		if s.src != nil {
			*s.dst = *s.src
		}
	}
	if in.Highlights != nil {
		experience.SetHighlights(*in.Highlights)
	}
}

// NewExperienceService creates a new experience service.
func NewExperienceService(experienceRepo repository.ExperienceRepository) *ExperienceService {
	return &ExperienceService{experienceRepo: experienceRepo}
}

// Create validates required fields and persists a new experience entry.
func (s *ExperienceService) Create(ctx context.Context, in CreateExperienceInput) (*models.Experience, error) {
	missing := validation.MissingFields(map[string]any{
		"company":    in.Company,
		"role":       in.Role,
		"start_date": in.StartDate,
		"end_date":   in.EndDate,
		"location":   in.Location,
		"highlights": in.Highlights,
	}, experienceRequiredFields)
	if len(missing) > 0 {
		return nil, models.NewMissingFieldsError(missing)
	}

	experience := &models.Experience{
		Company:   in.Company,
		Role:      in.Role,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Location:  in.Location,
	}
	experience.SetHighlights(in.Highlights)
	if err := s.experienceRepo.Create(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

// List returns all experience entries in creation order.
func (s *ExperienceService) List(ctx context.Context) ([]*models.Experience, error) {
	return s.experienceRepo.List(ctx)
}

// Update applies a sparse update without re-validating required fields.
func (s *ExperienceService) Update(ctx context.Context, id uint, in UpdateExperienceInput) (*models.Experience, error) {
	experience, err := s.experienceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Experience", id)
	}

	in.apply(experience)
	if err := s.experienceRepo.Update(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

// Delete removes an experience entry.
func (s *ExperienceService) Delete(ctx context.Context, id uint) error {
	return notFound(s.experienceRepo.Delete(ctx, id), "Experience", id)
}
