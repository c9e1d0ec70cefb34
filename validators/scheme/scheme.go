package schemeValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sevasetu/middleware"
)

// Save validates scheme create/update payloads.
func Save() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Scheme name is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Scheme description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedScheme", reqData)
		return c.Next()
	}
}
