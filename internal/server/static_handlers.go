package server

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// setupStaticRoutes serves the prebuilt frontend bundle when it exists.
// Unknown paths fall back to index.html so client-side routing works; when
// the bundle is missing the API stays reachable with a plain hint.
func (s *Server) setupStaticRoutes(app *fiber.App) {
	dist := s.config.FrontendDist
	index := filepath.Join(dist, "index.html")

	app.Static("/", dist)

	app.Get("/*", func(c *fiber.Ctx) error {
		if _, err := os.Stat(index); err != nil {
			if c.Path() == "/" {
				return c.SendString("Portfolio API is running. Build the frontend to serve the UI.")
			}
			return c.Status(fiber.StatusNotFound).SendString("Frontend not built yet.")
		}
		return c.SendFile(index)
	})
}
