package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performRequest(handlers ...gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/probe", append(handlers, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})...)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	engine.ServeHTTP(w, req)

	return w
}

func TestAuthenticatedRejectsAnonymous(t *testing.T) {
	w := performRequest(Authenticated())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticatedPassesIdentified(t *testing.T) {
	identify := func(c *gin.Context) {
		c.Set(UsernameKey, "emp-7")
		c.Next()
	}
	w := performRequest(identify, Authenticated())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnlyRejectsRegularEmployee(t *testing.T) {
	identify := func(c *gin.Context) {
		c.Set(UsernameKey, "emp-7")
		c.Set(IsAdminKey, false)
		c.Next()
	}
	w := performRequest(identify, AdminOnly())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnlyPassesAdmin(t *testing.T) {
	identify := func(c *gin.Context) {
		c.Set(UsernameKey, "admin-1")
		c.Set(IsAdminKey, true)
		c.Next()
	}
	w := performRequest(identify, AdminOnly())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	w := performRequest(RequestID())
	assert.NotEmpty(t, w.Header().Get(XRequestIDKey))
}
