package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sevasetu/config"
)

func setupGateway(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config.AppConfig = &config.Config{
		ApiBaseURL: srv.URL,
	}
	return srv
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
