package claimValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sevasetu/lifecycle"
	"sevasetu/middleware"
)

func isValidName(name string) bool {
	re := regexp.MustCompile(`^[A-Za-z\s]+$`)
	return re.MatchString(name)
}

// Submit validates the multipart claim submission. Documents are optional;
// the server decides whether the attached set is sufficient.
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		if strings.TrimSpace(c.FormValue("schemeId")) == "" {
			errors["schemeId"] = "Scheme is required!"
		}
		if strings.TrimSpace(c.FormValue("membershipNumber")) == "" {
			errors["membershipNumber"] = "Membership number is required!"
		}

		name := strings.TrimSpace(c.FormValue("name"))
		if name == "" {
			errors["name"] = "Name is required!"
		} else if !isValidName(name) {
			errors["name"] = "Name should contain only letters and spaces!"
		}

		fatherName := strings.TrimSpace(c.FormValue("fatherName"))
		if fatherName == "" {
			errors["fatherName"] = "Father's name is required!"
		} else if !isValidName(fatherName) {
			errors["fatherName"] = "Father's name should contain only letters and spaces!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// FlagQueue validates the legacy triage label update.
func FlagQueue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Queue string `json:"queue"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		switch reqData.Queue {
		case lifecycle.QueueGreen, lifecycle.QueueOrange, lifecycle.QueueRed:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"queue": "Queue must be green, orange or red!",
			})
		}

		c.Locals("validatedQueue", reqData.Queue)
		return c.Next()
	}
}
