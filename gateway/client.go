// Package gateway is the only place that talks to the remote welfare-scheme
// API. Every function is a single request/response round trip: no caching, no
// automatic retry, and the server's error message is surfaced verbatim when
// it sends one.
package gateway

import (
	"encoding/json"

	"github.com/go-resty/resty/v2"
	logrus "github.com/sirupsen/logrus"

	"sevasetu/config"
)

// FallbackMessage is shown when the server response carries no usable message.
const FallbackMessage = "Something went wrong. Please try again."

// APIError carries the server's own message across the gateway boundary.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsConflict reports whether the error is a business-rule conflict from the
// server (e.g. deleting a scheme that still has records).
func (e *APIError) IsConflict() bool {
	return e.StatusCode == 409 || e.StatusCode == 400
}

func newClient() *resty.Client {
	return resty.New().SetBaseURL(config.AppConfig.ApiBaseURL)
}

func authClient(token string) *resty.Client {
	client := newClient()
	if token != "" {
		client.SetAuthToken(token)
	}
	return client
}

// apiError builds an APIError from a non-2xx response, preferring the
// server's message field.
func apiError(resp *resty.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return &APIError{StatusCode: resp.StatusCode(), Message: body.Message}
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: FallbackMessage}
}

// transportError reduces a network-level failure to the generic retry prompt.
func transportError(op string, err error) error {
	logrus.Errorf("gateway %s failed: %v", op, err)
	return &APIError{StatusCode: 0, Message: FallbackMessage}
}
