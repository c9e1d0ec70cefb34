package schemeController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
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
	schemeRoutes "sevasetu/routers/schemeRoutes"
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
	schemeRoutes.SetupSchemeRoutes(app)
	return app
}

func sessionFor(t *testing.T, user models.User) *models.Session {
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

func TestListSchemesIsPublic(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/schemes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"s1","name":"PM Kisan","description":"Income support"}]`))
	})
	app := setupApp(t, mux)

	req := httptest.NewRequest(http.MethodGet, "/schemes/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "PM Kisan")
}

func TestDeleteSchemeRefusedWhileRecordsExist(t *testing.T) {
	var deletes int32
	mux := http.NewServeMux()
	mux.HandleFunc("/scheme-records/s1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hasRecords":true}`))
	})
	mux.HandleFunc("/schemes/s1", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&deletes, 1)
	})
	app := setupApp(t, mux)
	s := sessionFor(t, models.User{ID: "a1", Roles: []string{session.RoleAdmin}})

	req := httptest.NewRequest(http.MethodDelete, "/schemes/s1", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: s.SID})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Zero(t, atomic.LoadInt32(&deletes), "scheme list unchanged; delete never sent")
}

func TestDeleteSchemeSurfacesServerRefusal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/scheme-records/s1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hasRecords":false}`))
	})
	mux.HandleFunc("/schemes/s1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Scheme has active claims"}`))
	})
	app := setupApp(t, mux)
	s := sessionFor(t, models.User{ID: "a1", Roles: []string{session.RoleAdmin}})

	req := httptest.NewRequest(http.MethodDelete, "/schemes/s1", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: s.SID})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Scheme has active claims")
}

func TestSchemeCrudRequiresAdmin(t *testing.T) {
	app := setupApp(t, http.NewServeMux())
	s := sessionFor(t, models.User{ID: "p1", Roles: []string{session.RoleApprover}})

	body := bytes.NewBufferString(`{"name":"PM Kisan","description":"Income support"}`)
	req := httptest.NewRequest(http.MethodPost, "/schemes/", body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "sid", Value: s.SID})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
