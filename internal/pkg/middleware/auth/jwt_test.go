package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/AndriiHamasa/lunchify/internal/pkg/middleware"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

const testKey = "lunchify-test-key"

func signToken(t *testing.T, key string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte(key))
	require.NoError(t, err)

	return raw
}

func employeeClaims(sub string, isAdmin bool) Claims {
	now := time.Now()

	return Claims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestParseValidToken(t *testing.T) {
	strategy := NewJWTStrategy(testKey, 24*time.Hour)

	raw := signToken(t, testKey, employeeClaims("emp-42", true))
	claims, err := strategy.parse("Bearer " + raw)
	require.NoError(t, err)
	assert.Equal(t, "emp-42", claims.Subject)
	assert.True(t, claims.IsAdmin)
}

func TestParseRejections(t *testing.T) {
	strategy := NewJWTStrategy(testKey, 24*time.Hour)

	expired := employeeClaims("emp-1", false)
	expired.IssuedAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	noSubject := employeeClaims("", false)

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", code.ErrMissingHeader},
		{"not bearer", "Basic abc", code.ErrInvalidAuthHeader},
		{"garbage token", "Bearer not-a-token", code.ErrTokenInvalid},
		{"wrong key", "Bearer " + signToken(t, "other-key", employeeClaims("emp-1", false)), code.ErrSignatureInvalid},
		{"expired", "Bearer " + signToken(t, testKey, expired), code.ErrExpired},
		{"no subject", "Bearer " + signToken(t, testKey, noSubject), code.ErrTokenInvalid},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := strategy.parse(c.header)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, c.code), "got %v", err)
		})
	}
}

func TestAuthFuncSetsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	strategy := NewJWTStrategy(testKey, 24*time.Hour)

	engine := gin.New()
	var gotUser string
	var gotAdmin bool
	engine.GET("/probe", strategy.AuthFunc(), func(c *gin.Context) {
		gotUser = c.GetString(middleware.UsernameKey)
		gotAdmin = c.GetBool(middleware.IsAdminKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testKey, employeeClaims("emp-9", false)))
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emp-9", gotUser)
	assert.False(t, gotAdmin)
}

func TestAuthFuncRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	strategy := NewJWTStrategy(testKey, 24*time.Hour)

	engine := gin.New()
	engine.GET("/probe", strategy.AuthFunc(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
