package authValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sevasetu/middleware"
)

// Helper to validate mobile number format
func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(phone)
}

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Helper to validate aadhaar format
func isValidAadhaar(aadhaar string) bool {
	re := regexp.MustCompile(`^\d{12}$`)
	return re.MatchString(aadhaar)
}

// Helper to validate OTP format. Exactly six digits or the request never
// reaches the network.
func isValidOtp(otp string) bool {
	re := regexp.MustCompile(`^\d{6}$`)
	return re.MatchString(otp)
}

// validatePassword applies the portal password policy.
func validatePassword(password string) string {
	switch {
	case len(password) < 8:
		return "Password must be at least 8 characters long!"
	case !regexp.MustCompile(`[A-Z]`).MatchString(password):
		return "Password must contain at least one uppercase letter!"
	case !regexp.MustCompile(`[a-z]`).MatchString(password):
		return "Password must contain at least one lowercase letter!"
	case !regexp.MustCompile(`[0-9]`).MatchString(password):
		return "Password must contain at least one number!"
	case !regexp.MustCompile(`[^A-Za-z0-9]`).MatchString(password):
		return "Password must contain at least one special character!"
	}
	return ""
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Phone     string `json:"phone"`
			Email     string `json:"email"`
			Password  string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["firstName"] = "First name is required!"
		}
		if strings.TrimSpace(reqData.LastName) == "" {
			errors["lastName"] = "Last name is required!"
		}
		if !isValidPhone(reqData.Phone) {
			errors["phone"] = "Phone number must be 10 digits!"
		}
		// Email is optional
		if reqData.Email != "" && !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if msg := validatePassword(reqData.Password); msg != "" {
			errors["password"] = msg
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Phone    string `json:"phone"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !isValidPhone(reqData.Phone) {
			errors["phone"] = "Phone number must be 10 digits!"
		}
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// SendOtp validates an OTP request for either channel.
func SendOtp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Phone   string `json:"phone"`
			Aadhaar string `json:"aadhaar"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Phone == "" && reqData.Aadhaar == "" {
			errors["credentials"] = "Either phone or aadhaar number is required!"
		} else {
			if reqData.Phone != "" && !isValidPhone(reqData.Phone) {
				errors["phone"] = "Phone number must be 10 digits!"
			}
			if reqData.Aadhaar != "" && !isValidAadhaar(reqData.Aadhaar) {
				errors["aadhaar"] = "Aadhaar number must be 12 digits!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSendOtp", reqData)
		return c.Next()
	}
}

// VerifyOtp validates the phone OTP verification request.
func VerifyOtp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Phone string `json:"phone"`
			Otp   string `json:"otp"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !isValidPhone(reqData.Phone) {
			errors["phone"] = "Phone number must be 10 digits!"
		}
		if !isValidOtp(reqData.Otp) {
			errors["otp"] = "OTP must be exactly 6 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerifyOtp", reqData)
		return c.Next()
	}
}

// VerifyAadhaar validates aadhaar OTP verification for both the login and
// the profile variant.
func VerifyAadhaar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Aadhaar string `json:"aadhaar"`
			Otp     string `json:"otp"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !isValidAadhaar(reqData.Aadhaar) {
			errors["aadhaar"] = "Aadhaar number must be 12 digits!"
		}
		if !isValidOtp(reqData.Otp) {
			errors["otp"] = "OTP must be exactly 6 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerifyAadhaar", reqData)
		return c.Next()
	}
}
