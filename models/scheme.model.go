package models

import "encoding/json"

// Scheme is a welfare program maintained by admins.
type Scheme struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SchemeRecord is an admin-maintained reference record used to cross-check
// the authenticity of a submitted claim.
type SchemeRecord struct {
	ID               string                     `json:"_id"`
	Aadhaar          string                     `json:"aadhaar"`
	Name             string                     `json:"name"`
	SchemeID         string                     `json:"schemeId"`
	MembershipNumber string                     `json:"membershipNumber"`
	Documents        []string                   `json:"documents,omitempty"`
	ExtraDetails     map[string]json.RawMessage `json:"extraDetails,omitempty"`
}
