package server

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/models"
	"portfolio/internal/observability"
	"portfolio/internal/service"
)

// GetProfile handles GET /api/profile
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.profiles.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetProjects handles GET /api/projects
func (s *Server) GetProjects(c *fiber.Ctx) error {
	projects, err := s.projects.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projects)
}

// GetExperiences handles GET /api/experiences
func (s *Server) GetExperiences(c *fiber.Ctx) error {
	experiences, err := s.experiences.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(experiences)
}

// GetSkills handles GET /api/skills
func (s *Server) GetSkills(c *fiber.Ctx) error {
	skills, err := s.skills.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(skills)
}

// GetTestimonials handles GET /api/testimonials
func (s *Server) GetTestimonials(c *fiber.Ctx) error {
	testimonials, err := s.testimonials.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(testimonials)
}

// SubmitContact handles POST /api/contact
func (s *Server) SubmitContact(c *fiber.Ctx) error {
	var in service.AppendContactInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if _, err := s.contact.Append(c.Context(), in); err != nil {
		return respondError(c, err)
	}

	observability.ContactSubmissions.Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thanks for reaching out!",
	})
}

// DownloadResume handles GET /api/resume
func (s *Server) DownloadResume(c *fiber.Ctx) error {
	return c.Download(s.config.ResumePath, "Resume.pdf")
}
