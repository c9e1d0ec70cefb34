package claimController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sevasetu/config"
	"sevasetu/database"
	"sevasetu/middleware"
	"sevasetu/models"
	claimRoutes "sevasetu/routers/claimRoutes"
	"sevasetu/session"
)

func setupApp(t *testing.T, remote http.Handler) *fiber.App {
	t.Helper()

	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)

	config.AppConfig = &config.Config{
		ApiBaseURL:        srv.URL,
		SessionDBName:     "test",
		SessionTTLHours:   1,
		OtpCooldownSec:    30,
		SessionCookieName: "sid",
		LogFile:           filepath.Join(t.TempDir(), "app.log"),
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sessions.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Session{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Use(middleware.ResolveSession)
	claimRoutes.SetupClaimRoutes(app)
	return app
}

func authedSession(t *testing.T, user models.User) *models.Session {
	t.Helper()

	s, err := session.Create()
	require.NoError(t, err)

	snapshot, err := json.Marshal(user)
	require.NoError(t, err)

	s.Token = "tok-1"
	s.IsRegistered = true
	s.RegistrationStep = models.StepComplete
	s.UserSnapshot = snapshot
	require.NoError(t, session.Save(s))
	return s
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request, s *models.Session) *http.Response {
	t.Helper()

	if s != nil {
		req.AddCookie(&http.Cookie{Name: "sid", Value: s.SID})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) (bool, string) {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope.Status, envelope.Message
}

func TestSubmitClaimWithoutDocuments(t *testing.T) {
	var gotForm map[string]string

	mux := http.NewServeMux()
	mux.HandleFunc("/claims", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotForm = map[string]string{}
		for key, values := range r.MultipartForm.Value {
			gotForm[key] = values[0]
		}
		w.WriteHeader(http.StatusCreated)
	})
	app := setupApp(t, mux)
	s := authedSession(t, models.User{ID: "u1", Roles: []string{session.RoleUser}})

	body, contentType := multipartBody(t, map[string]string{
		"schemeId":         "pm-kisan",
		"membershipNumber": "MN123",
		"name":             "A B",
		"fatherName":       "C D",
	})
	req := httptest.NewRequest(http.MethodPost, "/claims/", body)
	req.Header.Set("Content-Type", contentType)

	resp := doRequest(t, app, req, s)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, "u1", gotForm["userId"], "owner comes from the session, not the form")
	assert.Equal(t, "pending", gotForm["status"])
	assert.Equal(t, "pm-kisan", gotForm["schemeId"])
}

func TestSubmitClaimValidationNeverReachesGateway(t *testing.T) {
	remoteHit := false
	app := setupApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remoteHit = true
	}))
	s := authedSession(t, models.User{ID: "u1", Roles: []string{session.RoleUser}})

	body, contentType := multipartBody(t, map[string]string{
		"schemeId": "pm-kisan",
		"name":     "A B 123", // digits are not allowed
	})
	req := httptest.NewRequest(http.MethodPost, "/claims/", body)
	req.Header.Set("Content-Type", contentType)

	resp := doRequest(t, app, req, s)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, remoteHit)
}

func TestApproveForbiddenForCitizen(t *testing.T) {
	app := setupApp(t, http.NewServeMux())
	s := authedSession(t, models.User{ID: "u1", Roles: []string{session.RoleUser}})

	req := httptest.NewRequest(http.MethodPost, "/claims/c1/approve", nil)
	resp := doRequest(t, app, req, s)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	_, message := decodeEnvelope(t, resp)
	assert.Equal(t, "Access Denied!", message)
}

func TestAnonymousCannotListClaims(t *testing.T) {
	app := setupApp(t, http.NewServeMux())

	req := httptest.NewRequest(http.MethodGet, "/claims/mine", nil)
	resp := doRequest(t, app, req, nil)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRetryBlockedAtCap(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/claims/my-claims", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"c1","userId":"u1","status":"rejected","retries":3,"name":"A B","fatherName":"C D"}]`))
	})
	app := setupApp(t, mux)
	s := authedSession(t, models.User{ID: "u1", Roles: []string{session.RoleUser}})

	body, contentType := multipartBody(t, map[string]string{})
	req := httptest.NewRequest(http.MethodPost, "/claims/c1/retry", body)
	req.Header.Set("Content-Type", contentType)

	resp := doRequest(t, app, req, s)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRetryCarriesRejectedClaimFields(t *testing.T) {
	var gotForm map[string]string

	mux := http.NewServeMux()
	mux.HandleFunc("/claims/my-claims", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"c1","userId":"u1","schemeId":"pm-kisan","membershipNumber":"MN123","status":"rejected","retries":2,"name":"A B","fatherName":"C D"}]`))
	})
	mux.HandleFunc("/claims", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotForm = map[string]string{}
		for key, values := range r.MultipartForm.Value {
			gotForm[key] = values[0]
		}
		w.WriteHeader(http.StatusCreated)
	})
	app := setupApp(t, mux)
	s := authedSession(t, models.User{ID: "u1", Roles: []string{session.RoleUser}})

	// Only the name is corrected; everything else carries over.
	body, contentType := multipartBody(t, map[string]string{"name": "A Kumar"})
	req := httptest.NewRequest(http.MethodPost, "/claims/c1/retry", body)
	req.Header.Set("Content-Type", contentType)

	resp := doRequest(t, app, req, s)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, "A Kumar", gotForm["name"])
	assert.Equal(t, "MN123", gotForm["membershipNumber"])
	assert.Equal(t, "pm-kisan", gotForm["schemeId"])
	assert.Equal(t, "pending", gotForm["status"])
}

func TestAllClaimsAnnotatesReviewerActions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/claims/all", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id":"c1","userId":"u9","status":"pending","retries":0,"name":"A B","fatherName":"C D"},
			{"_id":"c2","userId":"u9","status":"green","retries":0,"name":"E F","fatherName":"G H"}
		]`))
	})
	app := setupApp(t, mux)
	s := authedSession(t, models.User{ID: "p1", Roles: []string{session.RoleApprover}})

	req := httptest.NewRequest(http.MethodGet, "/claims/all", nil)
	resp := doRequest(t, app, req, s)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Data []struct {
			ID      string `json:"_id"`
			Status  string `json:"status"`
			Actions struct {
				Approve     bool `json:"approve"`
				Reject      bool `json:"reject"`
				UndoApprove bool `json:"undoApprove"`
				Retry       bool `json:"retry"`
			} `json:"actions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	require.Len(t, envelope.Data, 2)

	pending := envelope.Data[0]
	assert.True(t, pending.Actions.Approve)
	assert.True(t, pending.Actions.Reject)
	assert.False(t, pending.Actions.UndoApprove)

	legacyGreen := envelope.Data[1]
	assert.Equal(t, "approved", legacyGreen.Status, "legacy queue label normalised at the boundary")
	assert.True(t, legacyGreen.Actions.UndoApprove)
	assert.False(t, legacyGreen.Actions.Approve)
}
