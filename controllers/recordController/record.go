package recordController

import (
	"encoding/json"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	logrus "github.com/sirupsen/logrus"

	"sevasetu/gateway"
	"sevasetu/middleware"
	"sevasetu/utils"
)

func documentHeaders(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["documents"]
}

func submissionFrom(c *fiber.Ctx, documents []gateway.Upload) gateway.RecordSubmission {
	extra := map[string]string{}
	if raw := c.FormValue("extraDetails"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &extra); err != nil {
			logrus.Warnf("ignoring malformed extraDetails: %v", err)
			extra = nil
		}
	}

	return gateway.RecordSubmission{
		Aadhaar:          c.FormValue("aadhaar"),
		Name:             c.FormValue("name"),
		SchemeID:         c.FormValue("schemeId"),
		MembershipNumber: c.FormValue("membershipNumber"),
		Documents:        documents,
		ExtraDetails:     extra,
	}
}

// Search looks up reference records by membership number.
func Search(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	records, err := gateway.SearchSchemeRecords(s.Token, c.Query("membershipNumber"))
	if err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", records)
}

// Create adds a reference record with its documents in one request.
func Create(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	uploads, closeUploads, err := utils.OpenUploads(documentHeaders(c))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read attached documents!", nil)
	}
	defer closeUploads()

	if err := gateway.CreateSchemeRecord(s.Token, submissionFrom(c, uploads)); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Scheme record created.", nil)
}

// Update edits a reference record; only the submitted fields change.
func Update(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	uploads, closeUploads, err := utils.OpenUploads(documentHeaders(c))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read attached documents!", nil)
	}
	defer closeUploads()

	if err := gateway.UpdateSchemeRecord(s.Token, c.Params("id"), submissionFrom(c, uploads)); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scheme record updated.", nil)
}

// Delete removes a reference record.
func Delete(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	if err := gateway.DeleteSchemeRecord(s.Token, c.Params("id")); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scheme record deleted.", nil)
}

// UploadCsv bulk-imports records from a CSV file.
func UploadCsv(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	header, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "CSV file is required!", nil)
	}
	file, err := header.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read CSV file!", nil)
	}
	defer file.Close()

	if err := gateway.UploadCsv(s.Token, header.Filename, file); err != nil {
		return middleware.GatewayErrorResponse(c, err)
	}

	logrus.Infof("scheme-record CSV %q forwarded", header.Filename)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "CSV uploaded.", nil)
}
