package recordRoutes

import (
	"github.com/gofiber/fiber/v2"

	recordController "sevasetu/controllers/recordController"
	"sevasetu/middleware"
	"sevasetu/session"
	recordValidator "sevasetu/validators/record"
)

// SetupRecordRoutes registers the admin scheme-record routes.
func SetupRecordRoutes(app *fiber.App) {
	manage := middleware.RequireCapability(session.CapManageRecords)
	records := app.Group("/scheme-records", middleware.RequireAuth, manage)

	records.Get("/", recordValidator.Search(), recordController.Search)
	records.Post("/", recordValidator.Create(), recordController.Create)
	records.Put("/:id", recordValidator.Update(), recordController.Update)
	records.Delete("/:id", recordController.Delete)
	records.Post("/upload-csv", recordValidator.UploadCsv(), recordController.UploadCsv)
}
