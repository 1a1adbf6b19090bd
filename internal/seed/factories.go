package seed

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"

	"portfolio/internal/models"
	"portfolio/internal/validation"
)

// Factory builds content entities and persists them to the database.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

// CreateProfile persists the singleton profile from a fixture.
func (f *Factory) CreateProfile(fixture ProfileFixture) error {
	profile := &models.Profile{
		ID:       models.ProfileRowID,
		Name:     fixture.Name,
		Title:    fixture.Title,
		Summary:  fixture.Summary,
		Location: fixture.Location,
		Email:    fixture.Email,
		Phone:    fixture.Phone,
		Linkedin: fixture.Linkedin,
		Github:   fixture.Github,
	}
	return f.db.Save(profile).Error
}

// CreateProject persists a project from a fixture.
func (f *Factory) CreateProject(fixture ProjectFixture) error {
	project := &models.Project{
		Title:       fixture.Title,
		Description: fixture.Description,
		TechStack:   fixture.TechStack,
		RepoURL:     fixture.RepoURL,
		LiveURL:     fixture.LiveURL,
		ImageURL:    fixture.ImageURL,
	}
	return f.db.Create(project).Error
}

// CreateExperience persists an experience entry from a fixture.
func (f *Factory) CreateExperience(fixture ExperienceFixture) error {
	experience := &models.Experience{
		Company:    fixture.Company,
		Role:       fixture.Role,
		StartDate:  fixture.StartDate,
		EndDate:    fixture.EndDate,
		Location:   fixture.Location,
		Highlights: validation.JoinHighlights(fixture.Highlights),
	}
	return f.db.Create(experience).Error
}

// CreateSkill persists a skill from a fixture.
func (f *Factory) CreateSkill(fixture SkillFixture) error {
	skill := &models.Skill{
		Name:        fixture.Name,
		Category:    fixture.Category,
		Proficiency: models.SkillProficiency(fixture.Proficiency),
		IconURL:     fixture.IconURL,
	}
	return f.db.Create(skill).Error
}

// CreateTestimonial persists a generated testimonial.
func (f *Factory) CreateTestimonial(overrides ...func(*models.Testimonial)) error {
	testimonial := &models.Testimonial{
		AuthorName:    gofakeit.Name(),
		AuthorTitle:   gofakeit.JobTitle(),
		AuthorCompany: gofakeit.Company(),
		Content:       gofakeit.Paragraph(1, 2, 12, " "),
		Rating:        gofakeit.Number(4, 5),
		AuthorImage:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(testimonial)
	}
	return f.db.Create(testimonial).Error
}
