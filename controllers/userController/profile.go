package userController

import (
	"github.com/gofiber/fiber/v2"

	"sevasetu/gateway"
	"sevasetu/middleware"
	"sevasetu/models"
	"sevasetu/session"
)

// Me returns the session view: state, cached profile, verification flags and
// the capability set the navigation gates on.
func Me(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	user := session.User(s)

	capabilities := []string{}
	for _, capability := range []string{
		session.CapSubmitClaim,
		session.CapViewOwnClaims,
		session.CapReviewClaims,
		session.CapViewAllClaims,
		session.CapFlagQueue,
		session.CapManageSchemes,
		session.CapManageRecords,
	} {
		if session.Allowed(user, capability) {
			capabilities = append(capabilities, capability)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", fiber.Map{
		"state":            session.State(s),
		"registrationStep": s.RegistrationStep,
		"user":             user,
		"phoneVerified":    s.PhoneVerified,
		"aadhaarVerified":  s.AadhaarVerified,
		"bankVerified":     s.BankVerified,
		"capabilities":     capabilities,
	})
}

// UpdateProfile applies a partial profile update. Bank name and branch are
// never taken from the form: when bank details are present the IFSC is
// resolved again and the lookup result overwrites whatever was submitted, so
// an edited ifscCode always forces a fresh validation before anything saves.
func UpdateProfile(c *fiber.Ctx) error {
	update, ok := c.Locals("validatedProfileUpdate").(*models.ProfileUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s := middleware.CurrentSession(c)

	if update.BankDetails != nil {
		details, err := gateway.ValidateIfsc(s.Token, update.BankDetails.IfscCode)
		if err != nil {
			return middleware.GatewayErrorResponse(c, err)
		}
		update.BankDetails.BankName = details.BankName
		update.BankDetails.Branch = details.Branch
	}

	user, err := session.UpdateProfile(s, *update)
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated.", fiber.Map{
		"user":            user,
		"aadhaarVerified": s.AadhaarVerified,
		"bankVerified":    s.BankVerified,
	})
}

// GetUser fetches another user's profile for the claim review views.
func GetUser(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	user, err := gateway.GetUserByID(s.Token, c.Params("id"))
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", user)
}

// ValidateIfsc resolves an IFSC code so the form can auto-populate the bank
// name and branch.
func ValidateIfsc(c *fiber.Ctx) error {
	code, _ := c.Locals("validatedIfsc").(string)
	s := middleware.CurrentSession(c)

	details, err := gateway.ValidateIfsc(s.Token, code)
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "IFSC validated.", details)
}

// ChangePassword rotates the account password.
func ChangePassword(c *fiber.Ctx) error {
	reqData := new(struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s := middleware.CurrentSession(c)
	message, err := gateway.ChangePassword(s.Token, reqData.CurrentPassword, reqData.NewPassword)
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	if message == "" {
		message = "Password changed."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, nil)
}
