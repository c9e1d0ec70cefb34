package claimController

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	logrus "github.com/sirupsen/logrus"

	"sevasetu/gateway"
	"sevasetu/lifecycle"
	"sevasetu/middleware"
	"sevasetu/models"
	"sevasetu/session"
	"sevasetu/utils"
)

// claimView is a claim with its status normalised and the actions the
// current user may take on it. Navigation and buttons gate on the same
// lifecycle guards the handlers use.
type claimView struct {
	models.Claim
	Actions claimActions `json:"actions"`
}

type claimActions struct {
	Approve     bool `json:"approve"`
	Reject      bool `json:"reject"`
	UndoApprove bool `json:"undoApprove"`
	Retry       bool `json:"retry"`
}

func viewOf(claim models.Claim, user *models.User) claimView {
	claim.Status = lifecycle.NormalizeStatus(claim.Status)

	review := session.Allowed(user, session.CapReviewClaims)
	owner := user != nil && claim.UserID == user.ID

	return claimView{
		Claim: claim,
		Actions: claimActions{
			Approve:     review && lifecycle.CanApprove(&claim),
			Reject:      review && lifecycle.CanReject(&claim),
			UndoApprove: review && lifecycle.CanUndoApprove(&claim),
			Retry:       owner && lifecycle.CanRetry(&claim),
		},
	}
}

func viewsOf(claims []models.Claim, user *models.User) []claimView {
	views := make([]claimView, 0, len(claims))
	for _, claim := range claims {
		views = append(views, viewOf(claim, user))
	}
	return views
}

func certificateHeaders(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["certificates"]
}

// Submit creates a new claim. Documents ride in the same multipart request;
// they are optional at this layer, the server decides sufficiency. A failed
// submit is retried wholesale by the user, never resumed.
func Submit(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	user := middleware.CurrentUser(c)

	uploads, closeUploads, err := utils.OpenUploads(certificateHeaders(c))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read attached documents!", nil)
	}
	defer closeUploads()

	submission := gateway.ClaimSubmission{
		UserID:           user.ID,
		SchemeID:         c.FormValue("schemeId"),
		MembershipNumber: c.FormValue("membershipNumber"),
		Name:             c.FormValue("name"),
		FatherName:       c.FormValue("fatherName"),
		Certificates:     uploads,
	}

	if err := gateway.SubmitClaim(s.Token, submission); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}

	logrus.Infof("claim submitted for scheme %s by user %s", submission.SchemeID, user.ID)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Claim submitted.", nil)
}

// MyClaims lists the caller's claims.
func MyClaims(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	claims, err := gateway.MyClaims(s.Token)
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", viewsOf(claims, middleware.CurrentUser(c)))
}

// AllClaims lists every claim for reviewers.
func AllClaims(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	claims, err := gateway.AllClaims(s.Token)
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", viewsOf(claims, middleware.CurrentUser(c)))
}

// Approve moves a pending claim to approved. The server is the arbiter; a
// non-pending claim comes back as a no-op error and nothing changes locally.
func Approve(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	if err := gateway.ApproveClaim(s.Token, c.Params("id")); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Claim approved.", nil)
}

// Reject moves a pending claim to rejected. The server increments retries.
func Reject(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	if err := gateway.RejectClaim(s.Token, c.Params("id")); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Claim rejected.", nil)
}

// UndoApprove moves an approved claim back to pending. Retries stay put.
func UndoApprove(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	claim, err := gateway.UndoApproveClaim(s.Token, c.Params("id"))
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Approval undone.", viewOf(*claim, middleware.CurrentUser(c)))
}

// Retry resubmits a rejected claim. Only offered while the claim is rejected
// and under the retry cap; the counter carries into the new cycle.
func Retry(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	user := middleware.CurrentUser(c)
	claimID := c.Params("id")

	claims, err := gateway.MyClaims(s.Token)
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}

	var target *models.Claim
	for i := range claims {
		if claims[i].ID == claimID {
			target = &claims[i]
			break
		}
	}
	if target == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Claim not found!", nil)
	}
	if !lifecycle.CanRetry(target) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This claim cannot be retried.", nil)
	}

	uploads, closeUploads, err := utils.OpenUploads(certificateHeaders(c))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read attached documents!", nil)
	}
	defer closeUploads()

	// Corrected fields override the rejected claim's values.
	submission := gateway.ClaimSubmission{
		UserID:           user.ID,
		SchemeID:         orDefault(c.FormValue("schemeId"), target.SchemeID.ID),
		MembershipNumber: orDefault(c.FormValue("membershipNumber"), target.MembershipNumber),
		Name:             orDefault(c.FormValue("name"), target.Name),
		FatherName:       orDefault(c.FormValue("fatherName"), target.FatherName),
		Certificates:     uploads,
	}

	if err := gateway.SubmitClaim(s.Token, submission); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}

	logrus.Infof("claim %s resubmitted (retries=%d)", claimID, target.Retries)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Claim resubmitted.", nil)
}

// FlagQueue sets the legacy triage label on a claim.
func FlagQueue(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	queue, _ := c.Locals("validatedQueue").(string)

	if err := gateway.FlagClaimQueue(s.Token, c.Params("id"), queue); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Queue updated.", nil)
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
