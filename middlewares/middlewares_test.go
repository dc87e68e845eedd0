package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const secret = "mw-secret"

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := utils.GenerateToken("user-1", role, secret, time.Hour)
	require.NoError(t, err)
	return tok
}

func engine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": utils.CurrentUserID(c), "role": utils.CurrentRole(c)})
	})
	r.GET("/x", handlers...)
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := engine(AuthMiddleware(secret, "admin"))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	req.Header.Set("Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	req.Header.Set("Authorization", "Bearer "+token(t, "customer"))
	assert.Equal(t, http.StatusForbidden, serve(r, req).Code)

	req.Header.Set("Authorization", "Bearer "+token(t, "admin"))
	w := serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"user-1","role":"admin"}`, w.Body.String())
}

func TestAuthMiddleware_AnyRole(t *testing.T) {
	r := engine(AuthMiddleware(secret))
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "customer"))
	assert.Equal(t, http.StatusOK, serve(r, req).Code)
}

func TestWSAuthMiddleware_QueryToken(t *testing.T) {
	r := engine(WSAuthMiddleware(secret, "admin"))

	assert.Equal(t, http.StatusUnauthorized, serve(r, httptest.NewRequest(http.MethodGet, "/x", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/x?token="+token(t, "admin"), nil)).Code)
	assert.Equal(t, http.StatusForbidden, serve(r, httptest.NewRequest(http.MethodGet, "/x?token="+token(t, "customer"), nil)).Code)
}

func TestCORSMiddleware(t *testing.T) {
	r := engine(CORSMiddleware([]string{"https://soucey.app"}))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://soucey.app")
	assert.Equal(t, "https://soucey.app", serve(r, req).Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example")
	assert.Equal(t, http.StatusForbidden, serve(r, req).Code)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := engine(RequestLogger(zap.New(core)))

	serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/x", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(zap.New(core)))
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestFreshRole_StoredRoleWins(t *testing.T) {
	stored := map[string]string{"user-1": "customer"}
	lookup := func(_ context.Context, id string) (string, error) {
		role, ok := stored[id]
		if !ok {
			return "", fmt.Errorf("user: %w", services.ErrNotFound)
		}
		if role == "" {
			return "", errors.New("db down")
		}
		return role, nil
	}
	r := engine(AuthMiddleware(secret, "admin"), FreshRole(lookup, "admin"))
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "admin"))

	// token still says admin, the account was demoted since
	assert.Equal(t, http.StatusForbidden, serve(r, req).Code)

	stored["user-1"] = "admin"
	w := serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"user-1","role":"admin"}`, w.Body.String())

	stored["user-1"] = ""
	assert.Equal(t, http.StatusInternalServerError, serve(r, req).Code)

	delete(stored, "user-1")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)
}
