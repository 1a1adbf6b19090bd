package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/models"
	"portfolio/internal/observability"
)

// AdminTokenHeader carries the shared admin secret on mutating requests.
const AdminTokenHeader = "X-Admin-Token"

// AdminRequired gates admin routes behind the shared token. The comparison
// is constant-time; absence or mismatch short-circuits before any handler,
// validator, or persistence call runs.
func AdminRequired(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		supplied := c.Get(AdminTokenHeader)
		if supplied == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
			observability.AdminAuthFailures.Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Unauthorized"))
		}
		return c.Next()
	}
}
