package gateway

import (
	"encoding/json"
	"io"

	"sevasetu/lifecycle"
	"sevasetu/models"
)

// Upload is one document attached to a multipart request. The reader is
// consumed exactly once; a failed submit has to be retried wholesale.
type Upload struct {
	FileName string
	Reader   io.Reader
}

// ClaimSubmission is the payload of the multipart claim submit.
type ClaimSubmission struct {
	UserID           string
	SchemeID         string
	MembershipNumber string
	Name             string
	FatherName       string
	Certificates     []Upload
}

// SubmitClaim creates a new claim. Documents travel in the same multipart
// request as the scalar fields; there is no separate upload step.
func SubmitClaim(token string, data ClaimSubmission) error {
	req := authClient(token).R().
		SetMultipartFormData(map[string]string{
			"userId":           data.UserID,
			"schemeId":         data.SchemeID,
			"membershipNumber": data.MembershipNumber,
			"name":             data.Name,
			"fatherName":       data.FatherName,
			"status":           lifecycle.StatusPending,
		})
	for _, doc := range data.Certificates {
		req.SetFileReader("certificates", doc.FileName, doc.Reader)
	}

	resp, err := req.Post("/claims")
	if err != nil {
		return transportError("submit-claim", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

func fetchClaims(op, path, token string) ([]models.Claim, error) {
	resp, err := authClient(token).R().Get(path)
	if err != nil {
		return nil, transportError(op, err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	var claims []models.Claim
	if err := json.Unmarshal(resp.Body(), &claims); err != nil {
		return nil, transportError(op+" decode", err)
	}
	return claims, nil
}

// MyClaims lists the caller's own claims.
func MyClaims(token string) ([]models.Claim, error) {
	return fetchClaims("my-claims", "/claims/my-claims", token)
}

// AllClaims lists every claim (approver/admin view).
func AllClaims(token string) ([]models.Claim, error) {
	return fetchClaims("all-claims", "/claims/all", token)
}

// ApproveClaim moves a pending claim to approved.
func ApproveClaim(token, claimID string) error {
	resp, err := authClient(token).R().Post("/claims/approve-claim/" + claimID)
	if err != nil {
		return transportError("approve-claim", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// RejectClaim moves a pending claim to rejected.
func RejectClaim(token, claimID string) error {
	resp, err := authClient(token).R().Post("/claims/reject-claim/" + claimID)
	if err != nil {
		return transportError("reject-claim", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// UndoApproveClaim moves an approved claim back to pending and returns the
// server's view of the claim.
func UndoApproveClaim(token, claimID string) (*models.Claim, error) {
	resp, err := authClient(token).R().Post("/claims/undo-approve/" + claimID)
	if err != nil {
		return nil, transportError("undo-approve", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	var claim models.Claim
	if err := json.Unmarshal(resp.Body(), &claim); err != nil {
		return nil, transportError("undo-approve decode", err)
	}
	return &claim, nil
}

// FlagClaimQueue sets the legacy triage label on a claim.
func FlagClaimQueue(token, claimID, queue string) error {
	resp, err := authClient(token).R().
		SetBody(map[string]string{"queue": queue}).
		Put("/claim/update/" + claimID)
	if err != nil {
		return transportError("flag-queue", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}
