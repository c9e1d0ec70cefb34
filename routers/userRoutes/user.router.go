package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	userController "sevasetu/controllers/userController"
	"sevasetu/middleware"
	"sevasetu/session"
	profileValidator "sevasetu/validators/profile"
)

// SetupUserRoutes registers the profile routes.
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/user")

	user.Get("/me", userController.Me)
	user.Put("/update", middleware.RequireAuth, profileValidator.UpdateProfile(), userController.UpdateProfile)
	user.Get("/validate-ifsc/:code", middleware.RequireAuth, profileValidator.ValidateIfsc(), userController.ValidateIfsc)
	user.Post("/change-password", middleware.RequireAuth, profileValidator.ChangePassword(), userController.ChangePassword)
	user.Get("/:id", middleware.RequireAuth, middleware.RequireCapability(session.CapViewAllClaims), userController.GetUser)
}
