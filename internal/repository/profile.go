// Package repository contains the GORM-backed persistence layer. Each
// entity gets an interface plus a gorm implementation so services can be
// tested against stubs.
package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio/internal/models"
)

// ProfileRepository defines data operations for the profile singleton.
type ProfileRepository interface {
	Get(ctx context.Context) (*models.Profile, error)
	Insert(ctx context.Context, profile *models.Profile) error
	Save(ctx context.Context, profile *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).First(&profile, models.ProfileRowID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Insert writes the fixed-id row. ON CONFLICT collapses a concurrent first
// write into an update of the same row, so two racing upserts cannot leave
// two profiles behind.
func (r *profileRepository) Insert(ctx context.Context, profile *models.Profile) error {
	profile.ID = models.ProfileRowID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}

func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
