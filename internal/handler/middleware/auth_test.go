//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"bookify/internal/domain/user"
	"bookify/internal/handler/middleware"
	"bookify/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	userID uuid.UUID
	role   user.Role
}

func (v stubValidator) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	if token != "good" {
		return uuid.Nil, "", errors.New("invalid token")
	}
	return v.userID, v.role, nil
}

func newRouter(role user.Role) (*gin.Engine, uuid.UUID) {
	gin.SetMode(gin.TestMode)
	id := uuid.New()
	m := middleware.NewAuthMiddleware(stubValidator{userID: id, role: role})

	echo := func(c *gin.Context) {
		uid, ok := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "user_id": uid.String()})
	}

	r := gin.New()
	r.GET("/private", m.RequireAuth(), echo)
	r.GET("/admin", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleAdmin), echo)
	r.GET("/public", m.OptionalAuth(), echo)
	return r, id
}

func TestRequireAuth(t *testing.T) {
	r, id := newRouter(user.RoleCustomer)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "bad")
	httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
}

func TestRequireAuthReadsCookie(t *testing.T) {
	r, _ := newRouter(user.RoleCustomer)

	rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/private", nil,
		[]*http.Cookie{{Name: "access_token", Value: "good"}}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleAtLeast(t *testing.T) {
	customer, _ := newRouter(user.RoleCustomer)
	rec := httptest.PerformRequest(t, customer, http.MethodGet, "/admin", nil, "good")
	httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")

	admin, _ := newRouter(user.RoleAdmin)
	rec = httptest.PerformRequest(t, admin, http.MethodGet, "/admin", nil, "good")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuth(t *testing.T) {
	r, _ := newRouter(user.RoleCustomer)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, "bad")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, "good")
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
}
