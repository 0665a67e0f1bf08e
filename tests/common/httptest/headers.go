//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// JSONHeaders is what gin writes for c.JSON responses.
var JSONHeaders = map[string]string{"Content-Type": "application/json; charset=utf-8"}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertCookieCleared checks that the response expires the named cookie.
func AssertCookieCleared(t *testing.T, w *httptest.ResponseRecorder, name string) {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			assert.Empty(t, c.Value, "cookie %s still has a value", name)
			assert.Negative(t, c.MaxAge, "cookie %s not expired", name)
			return
		}
	}
	t.Errorf("cookie %s not set on response", name)
}
