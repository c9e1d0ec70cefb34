package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "sevasetu/controllers/authController"
	"sevasetu/middleware"
	authValidator "sevasetu/validators/auth"
)

// SetupAuthRoutes registers registration, login and verification routes.
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", authValidator.Register(), authController.Register)
	auth.Post("/login", authValidator.Login(), authController.Login)
	auth.Post("/send-otp", authValidator.SendOtp(), authController.SendOtp)
	auth.Post("/verify-otp", authValidator.VerifyOtp(), authController.VerifyOtp)
	auth.Post("/login-aadhaar", authValidator.VerifyAadhaar(), authController.LoginWithAadhaar)
	auth.Post("/verify-aadhaar-profile", middleware.RequireAuth, authValidator.VerifyAadhaar(), authController.VerifyAadhaarProfile)
	auth.Post("/logout", authController.Logout)
}
