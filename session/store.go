package session

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sevasetu/config"
	"sevasetu/database"
	"sevasetu/models"
)

// Create inserts a fresh anonymous session row and returns it.
func Create() (*models.Session, error) {
	s := &models.Session{
		SID:              uuid.NewString(),
		RegistrationStep: models.StepPersonalInfo,
		ExpiresAt:        time.Now().Add(time.Duration(config.AppConfig.SessionTTLHours) * time.Hour),
	}
	if err := database.Database.Db.Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// FindBySID loads a live session row. Expired or unknown sids return
// gorm.ErrRecordNotFound so the caller falls back to a fresh anonymous one.
func FindBySID(sid string) (*models.Session, error) {
	var s models.Session
	err := database.Database.Db.
		Where("sid = ? AND expires_at > ?", sid, time.Now()).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Save persists the session row.
func Save(s *models.Session) error {
	return database.Database.Db.Save(s).Error
}

// reset clears everything the session learned since it was anonymous. The
// row itself survives so the sid cookie stays valid.
func reset(s *models.Session) {
	s.Token = ""
	s.RegistrationStep = models.StepPersonalInfo
	s.IsRegistered = false
	s.PhoneVerified = false
	s.AadhaarVerified = false
	s.BankVerified = false
	s.VerifiedAadhaar = ""
	s.UserSnapshot = nil
}

// PruneExpired deletes session rows past their TTL.
func PruneExpired(db *gorm.DB) (int64, error) {
	result := db.Unscoped().
		Where("expires_at <= ?", time.Now()).
		Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
