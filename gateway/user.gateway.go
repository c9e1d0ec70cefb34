package gateway

import (
	"encoding/json"

	"sevasetu/models"
)

// GetProfile fetches the authenticated user's own profile.
func GetProfile(token string) (*models.User, error) {
	resp, err := authClient(token).R().Get("/user/me")
	if err != nil {
		return nil, transportError("get-profile", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	var user models.User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, transportError("get-profile decode", err)
	}
	return &user, nil
}

// GetUserByID fetches another user's profile (approver/admin views).
func GetUserByID(token, id string) (*models.User, error) {
	resp, err := authClient(token).R().Get("/user/" + id)
	if err != nil {
		return nil, transportError("get-user", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	var user models.User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, transportError("get-user decode", err)
	}
	return &user, nil
}

// UpdateProfile applies a partial profile update and returns the new profile.
func UpdateProfile(token string, update models.ProfileUpdate) (*models.User, error) {
	resp, err := authClient(token).R().
		SetBody(update).
		Put("/user/update")
	if err != nil {
		return nil, transportError("update-profile", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	var user models.User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, transportError("update-profile decode", err)
	}
	return &user, nil
}

// ChangePassword rotates the account password.
func ChangePassword(token, currentPassword, newPassword string) (string, error) {
	resp, err := authClient(token).R().
		SetBody(map[string]string{
			"currentPassword": currentPassword,
			"newPassword":     newPassword,
		}).
		Post("/user/change-password")
	if err != nil {
		return "", transportError("change-password", err)
	}
	if resp.IsError() {
		return "", apiError(resp)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", transportError("change-password decode", err)
	}
	return body.Message, nil
}

// IfscDetails is the lookup result for a bank routing code.
type IfscDetails struct {
	BankName string `json:"bankName"`
	Branch   string `json:"branch"`
}

// ValidateIfsc resolves an IFSC code to its bank name and branch.
func ValidateIfsc(token, code string) (*IfscDetails, error) {
	resp, err := authClient(token).R().Get("/user/validate-ifsc/" + code)
	if err != nil {
		return nil, transportError("validate-ifsc", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	var details IfscDetails
	if err := json.Unmarshal(resp.Body(), &details); err != nil {
		return nil, transportError("validate-ifsc decode", err)
	}
	return &details, nil
}
