package claimRoutes

import (
	"github.com/gofiber/fiber/v2"

	claimController "sevasetu/controllers/claimController"
	"sevasetu/middleware"
	"sevasetu/session"
	claimValidator "sevasetu/validators/claim"
)

// SetupClaimRoutes registers claim submission and review routes.
func SetupClaimRoutes(app *fiber.App) {
	claims := app.Group("/claims", middleware.RequireAuth)

	claims.Post("/", middleware.RequireCapability(session.CapSubmitClaim), claimValidator.Submit(), claimController.Submit)
	claims.Get("/mine", middleware.RequireCapability(session.CapViewOwnClaims), claimController.MyClaims)
	claims.Get("/all", middleware.RequireCapability(session.CapViewAllClaims), claimController.AllClaims)
	claims.Post("/:id/retry", middleware.RequireCapability(session.CapSubmitClaim), claimController.Retry)

	claims.Post("/:id/approve", middleware.RequireCapability(session.CapReviewClaims), claimController.Approve)
	claims.Post("/:id/reject", middleware.RequireCapability(session.CapReviewClaims), claimController.Reject)
	claims.Post("/:id/undo-approve", middleware.RequireCapability(session.CapReviewClaims), claimController.UndoApprove)
	claims.Put("/:id/queue", middleware.RequireCapability(session.CapFlagQueue), claimValidator.FlagQueue(), claimController.FlagQueue)
}
