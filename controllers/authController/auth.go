package authController

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	logrus "github.com/sirupsen/logrus"

	"sevasetu/gateway"
	"sevasetu/middleware"
	"sevasetu/session"
)

// Register starts the registration flow. A phone that is already registered
// comes back as a recoverable conflict pointing the visitor to login; the
// session does not advance in that case.
func Register(c *fiber.Ctx) error {
	reqData := new(gateway.RegisterRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s := middleware.CurrentSession(c)
	if err := session.Register(s, *reqData); err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && strings.Contains(strings.ToLower(apiErr.Message), "already registered") {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, apiErr.Message, fiber.Map{
				"redirect": "/login",
			})
		}
		return middleware.GatewayErrorResponse(c, err)
	}

	logrus.Infof("session %s advanced to phone verification", s.SID)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registered. Verify your phone to continue.", fiber.Map{
		"registrationStep": s.RegistrationStep,
	})
}

// SendOtp requests an OTP on the phone or aadhaar channel. Resend inside the
// cooldown window is refused locally with the remaining wait.
func SendOtp(c *fiber.Ctx) error {
	reqData := new(struct {
		Phone   string `json:"phone"`
		Aadhaar string `json:"aadhaar"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	channel := session.ChannelPhone
	destination := reqData.Phone
	if reqData.Aadhaar != "" {
		channel = session.ChannelAadhaar
		destination = reqData.Aadhaar
	}

	s := middleware.CurrentSession(c)
	wait, err := session.SendOtp(s, channel, destination)
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	if wait > 0 {
		seconds := int(wait.Seconds() + 0.5)
		return middleware.JsonResponse(c, fiber.StatusTooManyRequests, false,
			fmt.Sprintf("Please wait %d seconds before requesting another OTP.", seconds),
			fiber.Map{"retryAfterSec": seconds})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent.", nil)
}

// VerifyOtp completes phone verification and authenticates the session.
func VerifyOtp(c *fiber.Ctx) error {
	reqData := new(struct {
		Phone string `json:"phone"`
		Otp   string `json:"otp"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s := middleware.CurrentSession(c)
	if err := session.VerifyPhoneOtp(s, reqData.Phone, reqData.Otp); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Phone verified.", fiber.Map{
		"user":             session.User(s),
		"registrationStep": s.RegistrationStep,
	})
}

// Login authenticates with phone and password.
func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s := middleware.CurrentSession(c)
	if err := session.LoginWithPassword(s, reqData.Phone, reqData.Password); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}

	middleware.TouchExpiry(c, s)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", session.User(s))
}

// LoginWithAadhaar authenticates with aadhaar and OTP.
func LoginWithAadhaar(c *fiber.Ctx) error {
	reqData := new(struct {
		Aadhaar string `json:"aadhaar"`
		Otp     string `json:"otp"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s := middleware.CurrentSession(c)
	if err := session.LoginWithAadhaar(s, reqData.Aadhaar, reqData.Otp); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}

	middleware.TouchExpiry(c, s)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", session.User(s))
}

// VerifyAadhaarProfile verifies the aadhaar on an existing profile.
func VerifyAadhaarProfile(c *fiber.Ctx) error {
	reqData := new(struct {
		Aadhaar string `json:"aadhaar"`
		Otp     string `json:"otp"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s := middleware.CurrentSession(c)
	message, err := session.VerifyAadhaarForProfile(s, reqData.Aadhaar, reqData.Otp)
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	if message == "" {
		message = "Aadhaar verified."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, nil)
}

// Logout drops the session to anonymous. Always succeeds; no server call.
func Logout(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	session.Logout(s)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}
