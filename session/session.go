// Package session owns the visitor's progress from anonymous to verified
// user. All mutation funnels through the operations here; nothing else
// touches the session row or its cached profile snapshot.
package session

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v4"
	logrus "github.com/sirupsen/logrus"

	"sevasetu/config"
	"sevasetu/gateway"
	"sevasetu/models"
)

// OTP channels with independent resend cooldowns.
const (
	ChannelPhone   = "phone"
	ChannelAadhaar = "aadhaar"
)

// Session states derived from the stored row.
const (
	StateAnonymous     = "anonymous"
	StateRegistering   = "registering"
	StateAuthenticated = "authenticated"
)

// State reports where the visitor stands.
func State(s *models.Session) string {
	switch {
	case s.Token != "" && s.IsRegistered:
		return StateAuthenticated
	case s.RegistrationStep > models.StepPersonalInfo:
		return StateRegistering
	default:
		return StateAnonymous
	}
}

// User decodes the cached profile snapshot, or nil for anonymous sessions.
func User(s *models.Session) *models.User {
	if len(s.UserSnapshot) == 0 {
		return nil
	}
	var u models.User
	if err := json.Unmarshal(s.UserSnapshot, &u); err != nil {
		logrus.Warnf("corrupt user snapshot for session %s: %v", s.SID, err)
		return nil
	}
	return &u
}

func setSnapshot(s *models.Session, u *models.User) {
	raw, err := json.Marshal(u)
	if err != nil {
		logrus.Errorf("marshal user snapshot: %v", err)
		return
	}
	s.UserSnapshot = raw

	s.PhoneVerified = u.PhoneVerified
	s.AadhaarVerified = u.AadhaarVerified
	if u.AadhaarVerified {
		s.VerifiedAadhaar = u.Aadhaar
	}
	// A changed aadhaar invalidates the earlier verification.
	if u.Aadhaar != s.VerifiedAadhaar {
		s.AadhaarVerified = false
	}
	s.BankVerified = u.BankDetails != nil && u.BankDetails.IsVerified
}

// Register submits the personal-info step. On success the session moves to
// the phone-OTP step; a "phone already registered" response leaves the
// session untouched so the caller can redirect to login.
func Register(s *models.Session, data gateway.RegisterRequest) error {
	token, err := gateway.Register(data)
	if err != nil {
		return err
	}

	s.Token = token
	s.RegistrationStep = models.StepPhoneOtp
	return Save(s)
}

// SendOtp requests an OTP on the given channel, enforcing the local resend
// cooldown. Returns the remaining wait when the window is still open.
func SendOtp(s *models.Session, channel, destination string) (time.Duration, error) {
	if left := Cooldowns.Remaining(s.SID, channel); left > 0 {
		return left, nil
	}

	var err error
	switch channel {
	case ChannelAadhaar:
		_, err = gateway.SendAadhaarOtp(destination)
	default:
		_, err = gateway.SendPhoneOtp(destination)
	}
	if err != nil {
		return 0, err
	}

	Cooldowns.Start(s.SID, channel, time.Duration(config.AppConfig.OtpCooldownSec)*time.Second)
	return 0, nil
}

// VerifyPhoneOtp completes the phone verification round trip. On success the
// session holds the issued token and the registration flow is complete.
func VerifyPhoneOtp(s *models.Session, phone, otp string) error {
	token, err := gateway.VerifyPhoneOtp(phone, otp)
	if err != nil {
		return err
	}

	s.Token = token
	s.PhoneVerified = true
	s.RegistrationStep = models.StepComplete
	s.IsRegistered = true
	if err := Save(s); err != nil {
		return err
	}
	return Hydrate(s)
}

// LoginWithPassword authenticates with phone+password.
func LoginWithPassword(s *models.Session, phone, password string) error {
	token, err := gateway.Login(phone, password)
	if err != nil {
		return err
	}
	return adopt(s, token)
}

// LoginWithAadhaar authenticates with aadhaar+OTP.
func LoginWithAadhaar(s *models.Session, aadhaar, otp string) error {
	token, err := gateway.VerifyAadhaarLogin(aadhaar, otp)
	if err != nil {
		return err
	}
	if err := adopt(s, token); err != nil {
		return err
	}
	s.AadhaarVerified = true
	s.VerifiedAadhaar = aadhaar
	return Save(s)
}

// VerifyAadhaarForProfile runs the profile aadhaar verification round trip
// for an already authenticated user. The cached snapshot is refreshed so it
// agrees with the flipped flags.
func VerifyAadhaarForProfile(s *models.Session, aadhaar, otp string) (string, error) {
	message, err := gateway.VerifyAadhaarProfile(s.Token, aadhaar, otp)
	if err != nil {
		return "", err
	}

	s.AadhaarVerified = true
	s.VerifiedAadhaar = aadhaar
	if err := Save(s); err != nil {
		return "", err
	}
	return message, Hydrate(s)
}

func adopt(s *models.Session, token string) error {
	s.Token = token
	s.RegistrationStep = models.StepComplete
	s.IsRegistered = true
	if err := Save(s); err != nil {
		return err
	}
	return Hydrate(s)
}

// Hydrate refreshes the cached profile from the server. Any failure, an
// expired token included, hard-resets the session to anonymous; a partially
// hydrated session is never left behind.
func Hydrate(s *models.Session) error {
	if s.Token == "" {
		reset(s)
		return Save(s)
	}

	if tokenExpired(s.Token) {
		logrus.Infof("session %s token expired, resetting", s.SID)
		reset(s)
		return Save(s)
	}

	user, err := gateway.GetProfile(s.Token)
	if err != nil {
		logrus.Warnf("hydrate failed for session %s: %v", s.SID, err)
		reset(s)
		if saveErr := Save(s); saveErr != nil {
			return saveErr
		}
		return err
	}

	setSnapshot(s, user)
	s.RegistrationStep = models.StepComplete
	s.IsRegistered = true
	return Save(s)
}

// UpdateProfile pushes a partial profile update. Changing the aadhaar value
// drops the verified flag until a fresh OTP round trip succeeds.
func UpdateProfile(s *models.Session, update models.ProfileUpdate) (*models.User, error) {
	if update.Aadhaar != "" && update.Aadhaar != s.VerifiedAadhaar {
		s.AadhaarVerified = false
	}

	user, err := gateway.UpdateProfile(s.Token, update)
	if err != nil {
		// Last-known-good snapshot stays; only the local flag moved.
		if saveErr := Save(s); saveErr != nil {
			logrus.Errorf("save session after failed update: %v", saveErr)
		}
		return nil, err
	}

	setSnapshot(s, user)
	return user, Save(s)
}

// Logout clears the session locally. It never fails and makes no server
// round trip; the token is simply forgotten.
func Logout(s *models.Session) {
	Cooldowns.CancelAll(s.SID)
	reset(s)
	if err := Save(s); err != nil {
		logrus.Errorf("save session on logout: %v", err)
	}
}

// tokenExpired peeks at the token's exp claim without verifying the
// signature. Verification belongs to the server; this only skips a round
// trip that is certain to fail.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Opaque tokens are fine; let the server judge them.
		return false
	}
	return !claims.VerifyExpiresAt(time.Now().Unix(), false)
}
