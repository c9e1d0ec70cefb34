package gateway

import (
	"encoding/json"
	"io"

	"sevasetu/models"
)

// RecordSubmission is the multipart payload for creating or updating a
// scheme record. On update, empty scalar fields are left out of the form.
type RecordSubmission struct {
	Aadhaar          string
	Name             string
	SchemeID         string
	MembershipNumber string
	Documents        []Upload
	ExtraDetails     map[string]string
}

func (r RecordSubmission) formData() map[string]string {
	form := make(map[string]string)
	if r.Aadhaar != "" {
		form["aadhaar"] = r.Aadhaar
	}
	if r.Name != "" {
		form["name"] = r.Name
	}
	if r.SchemeID != "" {
		form["schemeId"] = r.SchemeID
	}
	if r.MembershipNumber != "" {
		form["membershipNumber"] = r.MembershipNumber
	}
	if len(r.ExtraDetails) > 0 {
		if raw, err := json.Marshal(r.ExtraDetails); err == nil {
			form["extraDetails"] = string(raw)
		}
	}
	return form
}

// SearchSchemeRecords looks up reference records by membership number.
func SearchSchemeRecords(token, membershipNumber string) ([]models.SchemeRecord, error) {
	resp, err := authClient(token).R().
		SetQueryParam("membershipNumber", membershipNumber).
		Get("/scheme-records")
	if err != nil {
		return nil, transportError("search-records", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	var records []models.SchemeRecord
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, transportError("search-records decode", err)
	}
	return records, nil
}

// CreateSchemeRecord creates a reference record (admin only).
func CreateSchemeRecord(token string, record RecordSubmission) error {
	req := authClient(token).R().SetMultipartFormData(record.formData())
	for _, doc := range record.Documents {
		req.SetFileReader("documents", doc.FileName, doc.Reader)
	}

	resp, err := req.Post("/scheme-records")
	if err != nil {
		return transportError("create-record", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// UpdateSchemeRecord partially updates a reference record (admin only).
func UpdateSchemeRecord(token, recordID string, record RecordSubmission) error {
	req := authClient(token).R().SetMultipartFormData(record.formData())
	for _, doc := range record.Documents {
		req.SetFileReader("documents", doc.FileName, doc.Reader)
	}

	resp, err := req.Put("/scheme-records/" + recordID)
	if err != nil {
		return transportError("update-record", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// DeleteSchemeRecord removes a reference record (admin only).
func DeleteSchemeRecord(token, recordID string) error {
	resp, err := authClient(token).R().Delete("/scheme-records/" + recordID)
	if err != nil {
		return transportError("delete-record", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// UploadCsv bulk-imports scheme records from a CSV file (admin only).
func UploadCsv(token, fileName string, file io.Reader) error {
	resp, err := authClient(token).R().
		SetFileReader("file", fileName, file).
		Post("/scheme-records/upload-csv")
	if err != nil {
		return transportError("upload-csv", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}
