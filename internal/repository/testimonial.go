package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/models"
)

// TestimonialRepository defines the interface for testimonial data operations
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetByID(ctx context.Context, id uint) (*models.Testimonial, error)
	List(ctx context.Context) ([]*models.Testimonial, error)
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, id uint) error
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a new testimonial repository
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r *testimonialRepository) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.WithContext(ctx).First(&testimonial, id).Error
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// List returns testimonials newest first.
func (r *testimonialRepository) List(ctx context.Context) ([]*models.Testimonial, error) {
	testimonials := []*models.Testimonial{}
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&testimonials).Error
	return testimonials, err
}

func (r *testimonialRepository) Update(ctx context.Context, testimonial *models.Testimonial) error {
	return r.db.WithContext(ctx).Save(testimonial).Error
}

func (r *testimonialRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Testimonial{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
