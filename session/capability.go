package session

import "sevasetu/models"

// Role strings as returned by the remote API.
const (
	RoleUser     = "user"
	RoleApprover = "approver"
	RoleAdmin    = "admin"
)

// Capabilities consulted by both navigation and action gating. One table
// so the two can never drift apart.
const (
	CapSubmitClaim   = "submit-claim"
	CapViewOwnClaims = "view-own-claims"
	CapReviewClaims  = "review-claims"
	CapViewAllClaims = "view-all-claims"
	CapFlagQueue     = "flag-queue"
	CapManageSchemes = "manage-schemes"
	CapManageRecords = "manage-records"
)

var capabilityRoles = map[string][]string{
	CapSubmitClaim:   {RoleUser, RoleApprover, RoleAdmin},
	CapViewOwnClaims: {RoleUser, RoleApprover, RoleAdmin},
	CapReviewClaims:  {RoleApprover},
	CapViewAllClaims: {RoleApprover, RoleAdmin},
	CapFlagQueue:     {RoleApprover, RoleAdmin},
	CapManageSchemes: {RoleAdmin},
	CapManageRecords: {RoleAdmin},
}

// Allowed reports whether the user's roles grant the capability.
func Allowed(u *models.User, capability string) bool {
	if u == nil {
		return false
	}
	for _, role := range capabilityRoles[capability] {
		if u.HasRole(role) {
			return true
		}
	}
	return false
}
