//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorBody mirrors the envelope written by httperr.AbortWithError.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode response: %s", w.Body.String())
}

// AssertErrorResponse checks the status and, when msg is non-empty, that the
// error message contains it. The decoded envelope is returned for further checks.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error response: %s", w.Body.String())

	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
	return body
}
