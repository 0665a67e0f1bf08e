//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"bookify/internal/domain/user"
	"bookify/internal/handler/dto/request"
	"bookify/internal/handler/dto/response"
	"bookify/tests/common/authtest"
	"bookify/tests/common/dbtest"
	"bookify/tests/common/httptest"
	"bookify/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleCustomer))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestRegister() {
	s.Run("new account can log in", func() {
		t := s.T()
		id := authtest.RegisterUser(t, s.Router, "new@example.com", "password123")

		var role string
		err := s.DB.QueryRow(t.Context(), "SELECT role FROM users WHERE id = $1", id).Scan(&role)
		require.NoError(t, err)
		require.Equal(t, string(user.RoleCustomer), role)

		token := authtest.LoginUser(t, s.Router, "new@example.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("duplicate email", func() {
		t := s.T()
		body := request.RegisterRequest{Email: "guest@example.com", Password: "password123"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "guest@example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: "password123", expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "guest@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: "password123", expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: "password123", expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "guest@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not stamped")
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("cookie session", func() {
		t := s.T()
		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, httptest.ExtractCookies(login), "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "guest@example.com")
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("expired token", func() {
		t := s.T()
		var id uuid.UUID
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'guest@example.com'").Scan(&id))

		token := s.jwtHelper.CreateExpiredToken(t, id, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the cookie", func() {
		t := s.T()
		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, login.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(login))
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}
