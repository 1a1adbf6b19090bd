package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/models"
)

// SkillRepository defines the interface for skill data operations
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	GetByName(ctx context.Context, name string) (*models.Skill, error)
	List(ctx context.Context) ([]*models.Skill, error)
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id uint) error
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.WithContext(ctx).First(&skill, id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&skill).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) List(ctx context.Context) ([]*models.Skill, error) {
	skills := []*models.Skill{}
	err := r.db.WithContext(ctx).Order("category ASC, name ASC").Find(&skills).Error
	return skills, err
}

func (r *skillRepository) Update(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

func (r *skillRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Skill{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
