package schemeRoutes

import (
	"github.com/gofiber/fiber/v2"

	schemeController "sevasetu/controllers/schemeController"
	"sevasetu/middleware"
	"sevasetu/session"
	schemeValidator "sevasetu/validators/scheme"
)

// SetupSchemeRoutes registers the scheme catalogue and admin CRUD routes.
func SetupSchemeRoutes(app *fiber.App) {
	schemes := app.Group("/schemes")

	schemes.Get("/", schemeController.List)

	manage := middleware.RequireCapability(session.CapManageSchemes)
	schemes.Post("/", middleware.RequireAuth, manage, schemeValidator.Save(), schemeController.Add)
	schemes.Put("/:id", middleware.RequireAuth, manage, schemeValidator.Save(), schemeController.Update)
	schemes.Delete("/:id", middleware.RequireAuth, manage, schemeController.Delete)
}
