package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Registration step values, mirrored from the portal flow: personal info,
// phone OTP pending, complete.
const (
	StepPersonalInfo = 1
	StepPhoneOtp     = 2
	StepComplete     = 3
)

// Session is the local record backing one browser session. It holds the API
// token issued by the remote service plus the cached profile snapshot; the
// server stays authoritative for everything in the snapshot.
type Session struct {
	gorm.Model
	SID   string `gorm:"column:sid;uniqueIndex;size:36;not null"`
	Token string `gorm:"default:''"`

	RegistrationStep int  `gorm:"default:1"`
	IsRegistered     bool `gorm:"default:false"`

	PhoneVerified   bool `gorm:"default:false"`
	AadhaarVerified bool `gorm:"default:false"`
	BankVerified    bool `gorm:"default:false"`

	// Aadhaar value the last successful OTP verification ran against. A
	// profile edit that changes the stored aadhaar resets AadhaarVerified.
	VerifiedAadhaar string `gorm:"default:''"`

	UserSnapshot datatypes.JSON

	ExpiresAt time.Time `gorm:"not null;index"`
}
