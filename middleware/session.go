package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	logrus "github.com/sirupsen/logrus"

	"sevasetu/config"
	"sevasetu/models"
	"sevasetu/session"
)

// ResolveSession attaches the visitor's session row to the request. A
// missing, unknown or expired sid cookie yields a fresh anonymous session;
// a stored token with no cached profile triggers a hydrate, and any hydrate
// failure leaves the session hard-reset to anonymous.
func ResolveSession(c *fiber.Ctx) error {
	sid := c.Cookies(config.AppConfig.SessionCookieName)

	var s *models.Session
	if sid != "" {
		if found, err := session.FindBySID(sid); err == nil {
			s = found
		}
	}

	if s == nil {
		created, err := session.Create()
		if err != nil {
			logrus.Errorf("create session: %v", err)
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start a session!", nil)
		}
		s = created
		c.Cookie(&fiber.Cookie{
			Name:     config.AppConfig.SessionCookieName,
			Value:    s.SID,
			Expires:  s.ExpiresAt,
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}

	if s.Token != "" && len(s.UserSnapshot) == 0 {
		if err := session.Hydrate(s); err != nil {
			logrus.Infof("session %s dropped to anonymous: %v", s.SID, err)
		}
	}

	c.Locals("session", s)
	return c.Next()
}

// CurrentSession returns the session attached by ResolveSession.
func CurrentSession(c *fiber.Ctx) *models.Session {
	s, _ := c.Locals("session").(*models.Session)
	return s
}

// CurrentUser returns the cached profile of the session user, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	s := CurrentSession(c)
	if s == nil {
		return nil
	}
	return session.User(s)
}

// TouchExpiry slides the session TTL on authenticated activity, persists it
// and refreshes the sid cookie to match.
func TouchExpiry(c *fiber.Ctx, s *models.Session) {
	s.ExpiresAt = time.Now().Add(time.Duration(config.AppConfig.SessionTTLHours) * time.Hour)
	if err := session.Save(s); err != nil {
		logrus.Errorf("save session expiry: %v", err)
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     config.AppConfig.SessionCookieName,
		Value:    s.SID,
		Expires:  s.ExpiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
