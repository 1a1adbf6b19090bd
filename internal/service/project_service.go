package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

var projectRequiredFields = []string{"title", "description", "tech_stack"}

// ProjectService handles project CRUD with create-time validation.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// CreateProjectInput carries the fields for a new project.
type CreateProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TechStack   string `json:"tech_stack"`
	RepoURL     string `json:"repo_url"`
	LiveURL     string `json:"live_url"`
	ImageURL    string `json:"image_url"`
}

// UpdateProjectInput carries a sparse update: nil fields are left untouched.
type UpdateProjectInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TechStack   *string `json:"tech_stack"`
	RepoURL     *string `json:"repo_url"`
	LiveURL     *string `json:"live_url"`
	ImageURL    *string `json:"image_url"`
}

// apply copies only the supplied fields onto the project. The explicit
// field-to-setter table keeps the "only touch supplied fields" contract
// without reflection.
func (in UpdateProjectInput) apply(project *models.Project) {
	setters := []struct {
		src *string
		dst *string
	}{
		{in.Title, &project.Title},
		{in.Description, &project.Description},
		{in.TechStack, &project.TechStack},
		{in.RepoURL, &project.RepoURL},
		{in.LiveURL, &project.LiveURL},
		{in.ImageURL, &project.ImageURL},
	}
	for _, s := range setters {
		if s.src != nil {
			*s.dst = *s.src
		}
	}
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// Create validates required fields and persists a new project.
func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	missing := validation.MissingFields(map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"tech_stack":  in.TechStack,
	}, projectRequiredFields)
	if len(missing) > 0 {
		return nil, models.NewMissingFieldsError(missing)
	}

	project := &models.Project{
		Title:       in.Title,
		Description: in.Description,
		TechStack:   in.TechStack,
		RepoURL:     in.RepoURL,
		LiveURL:     in.LiveURL,
		ImageURL:    in.ImageURL,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// List returns all projects in creation order.
func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.projectRepo.List(ctx)
}

// Update applies a sparse update. Required fields are not re-validated; a
// caller may clear one to empty and downstream consumers must tolerate it.
func (s *ProjectService) Update(ctx context.Context, id uint, in UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Project", id)
	}

	in.apply(project)
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project. Deleting an already-deleted id fails with
// NOT_FOUND, never silent success.
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	return notFound(s.projectRepo.Delete(ctx, id), "Project", id)
}
