package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

var skillRequiredFields = []string{"name", "category", "proficiency"}

// SkillService handles skill CRUD. Skill names are unique site-wide and
// proficiency is constrained to the recognized levels at create time.
type SkillService struct {
	skillRepo repository.SkillRepository
}

// CreateSkillInput carries the fields for a new skill.
type CreateSkillInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency string `json:"proficiency"`
	IconURL     string `json:"icon_url"`
}

// UpdateSkillInput carries a sparse update: nil fields are left untouched.
type UpdateSkillInput struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Proficiency *string `json:"proficiency"`
	IconURL     *string `json:"icon_url"`
}

func (in UpdateSkillInput) apply(skill *models.Skill) {
	setters := []struct {
		src *string
		dst *string
	}{
		{in.Name, &skill.Name},
		{in.Category, &skill.Category},
		{in.IconURL, &skill.IconURL},
	}
	for _, s := range setters {
		if s.src != nil {
			*s.dst = *s.src
		}
	}
	if in.Proficiency != nil {
		skill.Proficiency = models.SkillProficiency(*in.Proficiency)
	}
}

// NewSkillService creates a new skill service.
func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

// Create validates required fields, the proficiency level, and name
// uniqueness, then persists a new skill.
func (s *SkillService) Create(ctx context.Context, in CreateSkillInput) (*models.Skill, error) {
	missing := validation.MissingFields(map[string]any{
		"name":        in.Name,
		"category":    in.Category,
		"proficiency": in.Proficiency,
	}, skillRequiredFields)
	if len(missing) > 0 {
		return nil, models.NewMissingFieldsError(missing)
	}

	proficiency := models.SkillProficiency(in.Proficiency)
	if !models.ValidProficiency(proficiency) {
		return nil, models.NewValidationError(fmt.Sprintf(
			"proficiency must be one of %s, %s, %s",
			models.ProficiencyBeginner, models.ProficiencyIntermediate, models.ProficiencyExpert,
		))
	}

	if _, err := s.skillRepo.GetByName(ctx, in.Name); err == nil {
		return nil, models.NewValidationError(fmt.Sprintf("skill %q already exists", in.Name))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	skill := &models.Skill{
		Name:        in.Name,
		Category:    in.Category,
		Proficiency: proficiency,
		IconURL:     in.IconURL,
	}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// List returns all skills ordered by category, then name.
func (s *SkillService) List(ctx context.Context) ([]*models.Skill, error) {
	return s.skillRepo.List(ctx)
}

// Update applies a sparse update without re-validating required fields.
func (s *SkillService) Update(ctx context.Context, id uint, in UpdateSkillInput) (*models.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Skill", id)
	}

	in.apply(skill)
	if err := s.skillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// Delete removes a skill.
func (s *SkillService) Delete(ctx context.Context, id uint) error {
	return notFound(s.skillRepo.Delete(ctx, id), "Skill", id)
}
