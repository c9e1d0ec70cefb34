package middleware

import (
	"github.com/gofiber/fiber/v2"

	"sevasetu/session"
)

// RequireAuth rejects requests from sessions that never authenticated.
func RequireAuth(c *fiber.Ctx) error {
	s := CurrentSession(c)
	if s == nil || session.State(s) != session.StateAuthenticated {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in to continue.", nil)
	}
	return c.Next()
}

// RequireCapability gates an action behind the central capability table.
// The server still enforces authorization; this only keeps unavailable
// actions out of reach.
func RequireCapability(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in to continue.", nil)
		}
		if !session.Allowed(user, capability) {
			return JsonResponse(c, fiber.StatusForbidden, false, "Access Denied!", nil)
		}
		return c.Next()
	}
}
