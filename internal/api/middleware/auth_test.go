package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contact-directory/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authTestSecret = "auth-test-secret"

func signToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID:   "5f6a3f4e-0000-0000-0000-000000000000",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedServer() *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"userID":   c.Get("userID"),
			"username": c.Get("username"),
		})
	}, JWTAuth(authTestSecret))
	return e
}

func requestWithToken(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Errors string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Errors
}

func TestJWTAuth(t *testing.T) {
	e := protectedServer()

	t.Run("valid token exposes the caller identity", func(t *testing.T) {
		rec := requestWithToken(e, signToken(t, authTestSecret, time.Hour))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "5f6a3f4e-0000-0000-0000-000000000000", body["userID"])
		assert.Equal(t, "alice", body["username"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := requestWithToken(e, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "missing or malformed token", decodeErrors(t, rec))
	})

	t.Run("expired token", func(t *testing.T) {
		rec := requestWithToken(e, signToken(t, authTestSecret, -time.Hour))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "token has expired", decodeErrors(t, rec))
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		rec := requestWithToken(e, signToken(t, "wrong-secret", time.Hour))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid or expired token", decodeErrors(t, rec))
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := requestWithToken(e, "not.a.token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid or expired token", decodeErrors(t, rec))
	})
}
