package gateway

import (
	"encoding/json"

	"sevasetu/models"
)

// ListSchemes fetches the public scheme catalogue.
func ListSchemes() ([]models.Scheme, error) {
	resp, err := newClient().R().Get("/schemes")
	if err != nil {
		return nil, transportError("list-schemes", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	var schemes []models.Scheme
	if err := json.Unmarshal(resp.Body(), &schemes); err != nil {
		return nil, transportError("list-schemes decode", err)
	}
	return schemes, nil
}

// AddScheme creates a scheme (admin only, enforced server-side).
func AddScheme(token, name, description string) error {
	resp, err := authClient(token).R().
		SetBody(map[string]string{"name": name, "description": description}).
		Post("/schemes")
	if err != nil {
		return transportError("add-scheme", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// UpdateScheme updates a scheme's name/description.
func UpdateScheme(token, schemeID, name, description string) error {
	resp, err := authClient(token).R().
		SetBody(map[string]string{"name": name, "description": description}).
		Put("/schemes/" + schemeID)
	if err != nil {
		return transportError("update-scheme", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// DeleteScheme removes a scheme. The server refuses deletion while records or
// claims still reference the scheme; that refusal comes back as an APIError.
func DeleteScheme(token, schemeID string) error {
	resp, err := authClient(token).R().Delete("/schemes/" + schemeID)
	if err != nil {
		return transportError("delete-scheme", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// CheckSchemeRecords reports whether a scheme still has reference records.
func CheckSchemeRecords(token, schemeID string) (bool, error) {
	resp, err := authClient(token).R().Get("/scheme-records/" + schemeID)
	if err != nil {
		return false, transportError("check-scheme-records", err)
	}
	if resp.IsError() {
		return false, apiError(resp)
	}

	var body struct {
		HasRecords bool `json:"hasRecords"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return false, transportError("check-scheme-records decode", err)
	}
	return body.HasRecords, nil
}
