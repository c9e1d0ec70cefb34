package schemeController

import (
	"github.com/gofiber/fiber/v2"
	logrus "github.com/sirupsen/logrus"

	"sevasetu/gateway"
	"sevasetu/middleware"
)

// List returns the public scheme catalogue.
func List(c *fiber.Ctx) error {
	schemes, err := gateway.ListSchemes()
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", schemes)
}

// Add creates a scheme.
func Add(c *fiber.Ctx) error {
	reqData := new(struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s := middleware.CurrentSession(c)
	if err := gateway.AddScheme(s.Token, reqData.Name, reqData.Description); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}

	logrus.Infof("scheme %q created", reqData.Name)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Scheme added.", nil)
}

// Update edits a scheme's name and description.
func Update(c *fiber.Ctx) error {
	reqData := new(struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s := middleware.CurrentSession(c)
	if err := gateway.UpdateScheme(s.Token, c.Params("id"), reqData.Name, reqData.Description); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scheme updated.", nil)
}

// Delete removes a scheme. A scheme that still has reference records is
// refused up front; the server enforces the same rule and its refusal is
// surfaced untouched if it disagrees.
func Delete(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	schemeID := c.Params("id")

	hasRecords, err := gateway.CheckSchemeRecords(s.Token, schemeID)
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	if hasRecords {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			"Scheme has existing records and cannot be deleted.", nil)
	}

	if err := gateway.DeleteScheme(s.Token, schemeID); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}

	logrus.Infof("scheme %s deleted", schemeID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scheme deleted.", nil)
}
