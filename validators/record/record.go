package recordValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sevasetu/middleware"
)

func isValidAadhaar(aadhaar string) bool {
	re := regexp.MustCompile(`^\d{12}$`)
	return re.MatchString(aadhaar)
}

// Search requires a membership number query.
func Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Query("membershipNumber")) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"membershipNumber": "Membership number is required!",
			})
		}
		return c.Next()
	}
}

// Create validates the multipart scheme-record creation form.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		if !isValidAadhaar(c.FormValue("aadhaar")) {
			errors["aadhaar"] = "Aadhaar number must be 12 digits!"
		}
		if strings.TrimSpace(c.FormValue("name")) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(c.FormValue("schemeId")) == "" {
			errors["schemeId"] = "Scheme is required!"
		}
		if strings.TrimSpace(c.FormValue("membershipNumber")) == "" {
			errors["membershipNumber"] = "Membership number is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// Update validates the partial multipart update. Present fields must still
// be well-formed.
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		if aadhaar := c.FormValue("aadhaar"); aadhaar != "" && !isValidAadhaar(aadhaar) {
			errors["aadhaar"] = "Aadhaar number must be 12 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// UploadCsv requires the csv file part.
func UploadCsv() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil || file == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"file": "CSV file is required!",
			})
		}
		if !strings.HasSuffix(strings.ToLower(file.Filename), ".csv") {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"file": "Only CSV files are accepted!",
			})
		}
		return c.Next()
	}
}
