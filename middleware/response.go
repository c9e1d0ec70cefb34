package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sevasetu/gateway"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// GatewayErrorResponse surfaces a failed remote call as a dismissible,
// recoverable error. Server messages pass through verbatim; transport
// failures arrive already reduced to the generic retry prompt.
func GatewayErrorResponse(c *fiber.Ctx, err error) error {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = fiber.StatusBadGateway
		}
		return JsonResponse(c, status, false, apiErr.Message, nil)
	}
	return JsonResponse(c, fiber.StatusBadGateway, false, gateway.FallbackMessage, nil)
}
