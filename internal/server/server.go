// Package server wires the Fiber app: middleware, routes, and handlers over
// the content services.
package server

import (
	"context"
	"log"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/service"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config       *config.Config
	db           *gorm.DB
	profiles     *service.ProfileService
	projects     *service.ProjectService
	experiences  *service.ExperienceService
	skills       *service.SkillService
	testimonials *service.TestimonialService
	contact      *service.ContactService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	return NewServerWithDB(cfg, db), nil
}

// NewServerWithDB creates a server over an already-open database. Tests use
// this with an in-memory sqlite instance.
func NewServerWithDB(cfg *config.Config, db *gorm.DB) *Server {
	return &Server{
		config:       cfg,
		db:           db,
		profiles:     service.NewProfileService(repository.NewProfileRepository(db)),
		projects:     service.NewProjectService(repository.NewProjectRepository(db)),
		experiences:  service.NewExperienceService(repository.NewExperienceRepository(db)),
		skills:       service.NewSkillService(repository.NewSkillRepository(db)),
		testimonials: service.NewTestimonialService(repository.NewTestimonialRepository(db)),
		contact:      service.NewContactService(repository.NewContactRepository(db)),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))

	// Structured logging middleware
	app.Use(middleware.StructuredLogger())

	// Prometheus request metrics
	prometheus := fiberprometheus.New("portfolio")
	prometheus.RegisterAt(app, "/api/metrics")
	app.Use(prometheus.Middleware)

	app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.AdminTokenHeader,
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		MaxAge:       86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Public content
	api.Get("/health", s.HealthCheck)
	api.Get("/profile", s.GetProfile)
	api.Get("/projects", s.GetProjects)
	api.Get("/experiences", s.GetExperiences)
	api.Get("/skills", s.GetSkills)
	api.Get("/testimonials", s.GetTestimonials)
	api.Get("/resume", s.DownloadResume)

	// Contact form, rate limited per IP
	api.Post("/contact", limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}), s.SubmitContact)

	// Admin routes, behind the shared token gate
	admin := api.Group("/admin", middleware.AdminRequired(s.config.AdminToken))
	admin.Put("/profile", s.UpsertProfile)

	admin.Post("/projects", s.CreateProject)
	admin.Put("/projects/:id", s.UpdateProject)
	admin.Delete("/projects/:id", s.DeleteProject)

	admin.Post("/experiences", s.CreateExperience)
	admin.Put("/experiences/:id", s.UpdateExperience)
	admin.Delete("/experiences/:id", s.DeleteExperience)

	admin.Post("/skills", s.CreateSkill)
	admin.Put("/skills/:id", s.UpdateSkill)
	admin.Delete("/skills/:id", s.DeleteSkill)

	admin.Post("/testimonials", s.CreateTestimonial)
	admin.Put("/testimonials/:id", s.UpdateTestimonial)
	admin.Delete("/testimonials/:id", s.DeleteTestimonial)

	admin.Get("/messages", s.ListContactMessages)

	// Server-rendered blog fragment
	blog := app.Group("/blog")
	blog.Get("/", s.BlogIndex)
	blog.Get("/posts", s.BlogAllPosts)
	blog.Get("/posts/:slug", s.BlogPostDetail)

	// Prebuilt frontend bundle with SPA fallback; registered last so API and
	// blog routes win.
	s.setupStaticRoutes(app)
}

// HealthCheck handles health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// App builds a configured Fiber app ready to listen.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Portfolio API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}
	log.Println("Server shutdown complete")
	return nil
}
