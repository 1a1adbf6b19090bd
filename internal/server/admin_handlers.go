package server

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/models"
	"portfolio/internal/observability"
	"portfolio/internal/service"
)

// UpsertProfile handles PUT /api/admin/profile
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var in service.UpsertProfileInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profiles.Upsert(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("profile", "upsert")
	return c.JSON(profile)
}

// CreateProject handles POST /api/admin/projects
func (s *Server) CreateProject(c *fiber.Ctx) error {
	var in service.CreateProjectInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	project, err := s.projects.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("project", "create")
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject handles PUT /api/admin/projects/:id
func (s *Server) UpdateProject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	var in service.UpdateProjectInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	project, err := s.projects.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("project", "update")
	return c.JSON(project)
}

// DeleteProject handles DELETE /api/admin/projects/:id
func (s *Server) DeleteProject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.projects.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("project", "delete")
	return c.JSON(fiber.Map{"message": "Deleted"})
}

// CreateExperience handles POST /api/admin/experiences
func (s *Server) CreateExperience(c *fiber.Ctx) error {
	var in service.CreateExperienceInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	experience, err := s.experiences.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("experience", "create")
	return c.Status(fiber.StatusCreated).JSON(experience)
}

// UpdateExperience handles PUT /api/admin/experiences/:id
func (s *Server) UpdateExperience(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	var in service.UpdateExperienceInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	experience, err := s.experiences.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("experience", "update")
	return c.JSON(experience)
}

// DeleteExperience handles DELETE /api/admin/experiences/:id
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.experiences.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("experience", "delete")
	return c.JSON(fiber.Map{"message": "Deleted"})
}

// CreateSkill handles POST /api/admin/skills
func (s *Server) CreateSkill(c *fiber.Ctx) error {
	var in service.CreateSkillInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	skill, err := s.skills.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("skill", "create")
	return c.Status(fiber.StatusCreated).JSON(skill)
}

// UpdateSkill handles PUT /api/admin/skills/:id
func (s *Server) UpdateSkill(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	var in service.UpdateSkillInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	skill, err := s.skills.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("skill", "update")
	return c.JSON(skill)
}

// DeleteSkill handles DELETE /api/admin/skills/:id
func (s *Server) DeleteSkill(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.skills.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("skill", "delete")
	return c.JSON(fiber.Map{"message": "Deleted"})
}

// CreateTestimonial handles POST /api/admin/testimonials
func (s *Server) CreateTestimonial(c *fiber.Ctx) error {
	var in service.CreateTestimonialInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	testimonial, err := s.testimonials.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("testimonial", "create")
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

// UpdateTestimonial handles PUT /api/admin/testimonials/:id
func (s *Server) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	var in service.UpdateTestimonialInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	testimonial, err := s.testimonials.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("testimonial", "update")
	return c.JSON(testimonial)
}

// DeleteTestimonial handles DELETE /api/admin/testimonials/:id
func (s *Server) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.testimonials.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	observability.RecordMutation("testimonial", "delete")
	return c.JSON(fiber.Map{"message": "Deleted"})
}

// ListContactMessages handles GET /api/admin/messages
func (s *Server) ListContactMessages(c *fiber.Ctx) error {
	messages, err := s.contact.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(messages)
}
