package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

var testimonialRequiredFields = []string{"author_name", "author_title", "author_company", "content"}

// TestimonialService handles testimonial CRUD. An unspecified rating
// defaults to 5; an explicit rating must be 1-5.
type TestimonialService struct {
	testimonialRepo repository.TestimonialRepository
}

// CreateTestimonialInput carries the fields for a new testimonial.
type CreateTestimonialInput struct {
	AuthorName    string `json:"author_name"`
	AuthorTitle   string `json:"author_title"`
	AuthorCompany string `json:"author_company"`
	Content       string `json:"content"`
	Rating        int    `json:"rating"`
	AuthorImage   string `json:"author_image"`
}

// UpdateTestimonialInput carries a sparse update: nil fields are left untouched.
type UpdateTestimonialInput struct {
	AuthorName    *string `json:"author_name"`
	AuthorTitle   *string `json:"author_title"`
	AuthorCompany *string `json:"author_company"`
	Content       *string `json:"content"`
	Rating        *int    `json:"rating"`
	AuthorImage   *string `json:"author_image"`
}

func (in UpdateTestimonialInput) apply(testimonial *models.Testimonial) {
	setters := []struct {
		src *string
		dst *string
	}{
		{in.AuthorName, &testimonial.AuthorName},
		{in.AuthorTitle, &testimonial.AuthorTitle},
		{in.AuthorCompany, &testimonial.AuthorCompany},
		{in.Content, &testimonial.Content},
		{in.AuthorImage, &testimonial.AuthorImage},
	}
	for _, s := range setters {
		if s.src != nil {
			*s.dst = *s.src
		}
	}
	if in.Rating != nil {
		testimonial.Rating = *in.Rating
	}
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(testimonialRepo repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{testimonialRepo: testimonialRepo}
}

// Create validates required fields and the rating range, then persists a
// new testimonial. A zero rating means "unspecified" and becomes 5.
func (s *TestimonialService) Create(ctx context.Context, in CreateTestimonialInput) (*models.Testimonial, error) {
	missing := validation.MissingFields(map[string]any{
		"author_name":    in.AuthorName,
		"author_title":   in.AuthorTitle,
		"author_company": in.AuthorCompany,
		"content":        in.Content,
	}, testimonialRequiredFields)
	if len(missing) > 0 {
		return nil, models.NewMissingFieldsError(missing)
	}

	rating := in.Rating
	if rating == 0 {
		rating = models.DefaultTestimonialRating
	}
	if rating < 1 || rating > 5 {
		return nil, models.NewValidationError("rating must be between 1 and 5")
	}

	testimonial := &models.Testimonial{
		AuthorName:    in.AuthorName,
		AuthorTitle:   in.AuthorTitle,
		AuthorCompany: in.AuthorCompany,
		Content:       in.Content,
		Rating:        rating,
		AuthorImage:   in.AuthorImage,
	}
	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// List returns all testimonials newest first.
func (s *TestimonialService) List(ctx context.Context) ([]*models.Testimonial, error) {
	return s.testimonialRepo.List(ctx)
}

// Update applies a sparse update. Required fields are not re-validated, but
// an explicit rating still has to be 1-5: a cleared rating would corrupt
// the display contract instead of just rendering empty text.
func (s *TestimonialService) Update(ctx context.Context, id uint, in UpdateTestimonialInput) (*models.Testimonial, error) {
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return nil, models.NewValidationError("rating must be between 1 and 5")
	}

	testimonial, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Testimonial", id)
	}

	in.apply(testimonial)
	if err := s.testimonialRepo.Update(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// Delete removes a testimonial.
func (s *TestimonialService) Delete(ctx context.Context, id uint) error {
	return notFound(s.testimonialRepo.Delete(ctx, id), "Testimonial", id)
}
