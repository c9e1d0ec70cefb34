package models

import "encoding/json"

// SchemeRef is a scheme reference on a claim. Depending on the endpoint the
// server returns either the raw id string or the populated scheme document,
// so unmarshalling accepts both.
type SchemeRef struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

func (s *SchemeRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		s.ID = id
		return nil
	}
	type populated SchemeRef
	var p populated
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = SchemeRef(p)
	return nil
}

func (s SchemeRef) MarshalJSON() ([]byte, error) {
	if s.Name == "" {
		return json.Marshal(s.ID)
	}
	type populated SchemeRef
	return json.Marshal(populated(s))
}

// Claim mirrors the claim document returned by the remote API.
type Claim struct {
	ID               string    `json:"_id"`
	UserID           string    `json:"userId,omitempty"`
	SchemeID         SchemeRef `json:"schemeId,omitempty"`
	MembershipNumber string    `json:"membershipNumber,omitempty"`
	Name             string    `json:"name"`
	FatherName       string    `json:"fatherName"`
	Certificate      []string  `json:"certificate,omitempty"`
	Queue            string    `json:"queue,omitempty"` // legacy triage label: green/orange/red
	Retries          int       `json:"retries"`
	Status           string    `json:"status"`
	CreatedAt        string    `json:"createdAt,omitempty"`
}
