package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/models"
)

// ExperienceRepository defines the interface for experience data operations
type ExperienceRepository interface {
	Create(ctx context.Context, experience *models.Experience) error
	GetByID(ctx context.Context, id uint) (*models.Experience, error)
	List(ctx context.Context) ([]*models.Experience, error)
	Update(ctx context.Context, experience *models.Experience) error
	Delete(ctx context.Context, id uint) error
}

type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new experience repository
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(ctx context.Context, experience *models.Experience) error {
	return r.db.WithContext(ctx).Create(experience).Error
}

func (r *experienceRepository) GetByID(ctx context.Context, id uint) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.WithContext(ctx).First(&experience, id).Error
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *experienceRepository) List(ctx context.Context) ([]*models.Experience, error) {
	experiences := []*models.Experience{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&experiences).Error
	return experiences, err
}

func (r *experienceRepository) Update(ctx context.Context, experience *models.Experience) error {
	return r.db.WithContext(ctx).Save(experience).Error
}

func (r *experienceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Experience{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
