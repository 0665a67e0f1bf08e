//go:build unit

package api_test

import (
	"testing"

	"bookify/internal/handler/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())
	return gin.New()
}

// asUser mimics RequireAuth by placing the user id where middleware.GetUserID reads it.
func asUser(userID uuid.UUID, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		h(c)
	}
}
