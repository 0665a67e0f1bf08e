//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"bookify/internal/handler/dto/request"
	"bookify/internal/handler/dto/response"
	"bookify/internal/pkg/cookie"
	"bookify/tests/common/dbtest"
	"bookify/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	registerPath = "/api/auth/register"
	loginPath    = "/api/auth/login"
	logoutPath   = "/api/auth/logout"
)

// RegisterUser signs up a customer through the API and returns its id.
func RegisterUser(t *testing.T, router *gin.Engine, email, password string) uuid.UUID {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, registerPath,
		request.RegisterRequest{Email: email, Password: password}, "")
	var res response.RegisterResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.NotEqual(t, uuid.Nil, res.ID)

	return res.ID
}

// LoginUser returns the access token set in the session cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	session := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, session, "no %s cookie on login response", cookie.AccessTokenCookieName)
	require.NotEmpty(t, session.Value)

	return session.Value
}

// CreateAndLogin inserts a user with dbtest.DefaultPassword and logs it in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.DefaultPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, logoutPath, nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	httptest.AssertCookieCleared(t, w, cookie.AccessTokenCookieName)
}
