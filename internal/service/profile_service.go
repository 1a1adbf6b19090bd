package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

var profileRequiredFields = []string{"name", "title", "summary", "location", "email"}

// ProfileService handles the profile singleton: one read operation and one
// upsert that creates the fixed-id row or sparsely updates it.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// UpsertProfileInput carries profile fields. All fields are pointers so the
// update path can distinguish "absent" from "set to empty"; the create path
// validates that every required field is present and non-empty.
type UpsertProfileInput struct {
	Name     *string `json:"name"`
	Title    *string `json:"title"`
	Summary  *string `json:"summary"`
	Location *string `json:"location"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Linkedin *string `json:"linkedin"`
	Github   *string `json:"github"`
}

func (in UpsertProfileInput) apply(profile *models.Profile) {
	setters := []struct {
		src *string
		dst *string
	}{
		{in.Name, &profile.Name},
		{in.Title, &profile.Title},
		{in.Summary, &profile.Summary},
		{in.Location, &profile.Location},
		{in.Email, &profile.Email},
		{in.Phone, &profile.Phone},
		{in.Linkedin, &profile.Linkedin},
		{in.Github, &profile.Github},
	}
	for _, s := range setters {
		if s.src != nil {
			*s.dst = *s.src
		}
	}
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Get returns the profile, or NOT_FOUND when nothing has been seeded yet.
func (s *ProfileService) Get(ctx context.Context) (*models.Profile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, notFound(err, "Profile", models.ProfileRowID)
	}
	return profile, nil
}

// Upsert creates the singleton row (validating required fields) when none
// exists, or applies a sparse update to the existing row without
// re-validation, mirroring collection update semantics.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	existing, err := s.profileRepo.Get(ctx)
	switch {
	case err == nil:
		in.apply(existing)
		if err := s.profileRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		missing := validation.MissingFields(map[string]any{
			"name":     in.Name,
			"title":    in.Title,
			"summary":  in.Summary,
			"location": in.Location,
			"email":    in.Email,
		}, profileRequiredFields)
		if len(missing) > 0 {
			return nil, models.NewMissingFieldsError(missing)
		}

		profile := &models.Profile{}
		in.apply(profile)
		if err := s.profileRepo.Insert(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil

	default:
		return nil, err
	}
}
