package profileValidator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sevasetu/middleware"
	"sevasetu/models"
)

var validate = validator.New()

// PAN format: 5 letters, 4 numbers, 1 letter
func isValidPan(pan string) bool {
	re := regexp.MustCompile(`^[A-Za-z]{5}[0-9]{4}[A-Za-z]$`)
	return re.MatchString(pan)
}

// IFSC format: 4 letters, a zero, 6 alphanumerics
func isValidIfsc(code string) bool {
	re := regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	return re.MatchString(code)
}

func isValidAadhaar(aadhaar string) bool {
	re := regexp.MustCompile(`^\d{12}$`)
	return re.MatchString(aadhaar)
}

// UpdateProfile validates the partial profile update. Bank details, when
// present, must be a complete block; a partially filled block never leaves
// this middleware.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.ProfileUpdate)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Aadhaar != "" && !isValidAadhaar(reqData.Aadhaar) {
			errors["aadhaar"] = "Aadhaar number must be 12 digits!"
		}
		if reqData.Pan != "" && !isValidPan(reqData.Pan) {
			errors["pan"] = "Invalid PAN format (5 letters, 4 numbers, 1 letter)!"
		}
		if reqData.BankDetails != nil {
			if !isValidIfsc(reqData.BankDetails.IfscCode) {
				errors["ifscCode"] = "Invalid IFSC code!"
			}
			if err := validate.Struct(reqData.BankDetails); err != nil {
				for _, fieldErr := range err.(validator.ValidationErrors) {
					field := strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:]
					if _, exists := errors[field]; !exists {
						errors[field] = "Invalid " + field + "!"
					}
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}

// ValidateIfsc validates the IFSC lookup path parameter.
func ValidateIfsc() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := strings.ToUpper(c.Params("code"))
		if !isValidIfsc(code) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"ifscCode": "Invalid IFSC code!",
			})
		}
		c.Locals("validatedIfsc", code)
		return c.Next()
	}
}

// ChangePassword validates the password rotation request.
func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
			ConfirmPassword string `json:"confirmPassword"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CurrentPassword == "" {
			errors["currentPassword"] = "Current password is required!"
		}
		if msg := passwordPolicy(reqData.NewPassword); msg != "" {
			errors["newPassword"] = msg
		}
		if reqData.ConfirmPassword != "" && reqData.ConfirmPassword != reqData.NewPassword {
			errors["confirmPassword"] = "Passwords do not match!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}

func passwordPolicy(password string) string {
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
