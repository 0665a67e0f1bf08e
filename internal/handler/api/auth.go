package api

import (
	"net/http"
	"time"

	reqdto "bookify/internal/handler/dto/request"
	resdto "bookify/internal/handler/dto/response"
	"bookify/internal/handler/httperr"
	"bookify/internal/handler/middleware"
	"bookify/internal/pkg/config"
	"bookify/internal/pkg/cookie"
	"bookify/internal/usecase/commands"
	"bookify/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	q         queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		q:         q,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Register
// @Description Create a customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithRules(c, err, authErrorRules, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{ID: id})
}

// @Summary User login
// @Description Login with email and password; the token is also set as the access_token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithRules(c, err, authErrorRules, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.AbortWithRules(c, err, queryErrorRules, http.StatusInternalServerError, "Internal server error")
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		User:        resdto.FromAuthorizedUserView(user),
	})
}

// @Summary User logout
// @Description Clear the access_token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; clearing the cookie is all the server can do
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithRules(c, err, queryErrorRules, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUserView(user))
}
