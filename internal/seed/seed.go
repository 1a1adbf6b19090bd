// Package seed provides demo content for development and fresh deployments.
// Seeding only runs when no profile exists, so a populated site is never
// overwritten.
package seed

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"portfolio/internal/middleware"
	"portfolio/internal/models"
)

// Options controls seeding behavior.
type Options struct {
	// Force seeds even when a profile already exists.
	Force bool
	// FixturesPath optionally points at a YAML file overriding the
	// built-in dataset.
	FixturesPath string
}

// Run seeds the database with the demo dataset. It is a no-op when a
// profile row already exists, unless Force is set.
func Run(db *gorm.DB, opts Options) error {
	var existing models.Profile
	err := db.First(&existing, models.ProfileRowID).Error
	switch {
	case err == nil && !opts.Force:
		middleware.Logger.Info("seed skipped: profile already exists")
		return nil
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	fixtures := defaultFixtures()
	if opts.FixturesPath != "" {
		loaded, err := LoadFixtures(opts.FixturesPath)
		if err != nil {
			return err
		}
		fixtures = loaded
	}

	factory := NewFactory(db)

	if err := factory.CreateProfile(fixtures.Profile); err != nil {
		return err
	}
	for _, p := range fixtures.Projects {
		if err := factory.CreateProject(p); err != nil {
			return err
		}
	}
	for _, e := range fixtures.Experiences {
		if err := factory.CreateExperience(e); err != nil {
			return err
		}
	}
	for _, s := range fixtures.Skills {
		if err := factory.CreateSkill(s); err != nil {
			return err
		}
	}

	// Testimonials have no counterpart in the fixture dataset; generate a
	// handful of plausible ones.
	for i := 0; i < 3; i++ {
		if err := factory.CreateTestimonial(); err != nil {
			return err
		}
	}

	middleware.Logger.Info("seed completed",
		slog.Int("projects", len(fixtures.Projects)),
		slog.Int("experiences", len(fixtures.Experiences)),
		slog.Int("skills", len(fixtures.Skills)),
	)
	return nil
}
