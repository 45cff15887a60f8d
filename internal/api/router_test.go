package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bullprompt-backend/config"
	"bullprompt-backend/internal/database"
	"bullprompt-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{CORSOrigins: []string{"chrome-extension://*", "http://localhost:5173"}}
	svc := services.NewPromptService(database.NewMemoryBackend(), services.WithLogger(zap.NewNop()))
	return NewRouter(cfg, svc, zap.NewNop())
}

func TestRouterServesPrompts(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/prompts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouterAllowsExtensionOrigin(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/api/v1/prompts", nil)
	req.Header.Set("Origin", "chrome-extension://abcdefghijklmnop")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "chrome-extension://abcdefghijklmnop", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterRejectsForeignOrigin(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/prompts", nil)
	req.Header.Set("Origin", "https://evil.example")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouterServesSwagger(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/swagger/doc.json", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/prompts/{id}")
}

func TestRouterDefaultsEmptyCORSOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := services.NewPromptService(database.NewMemoryBackend(), services.WithLogger(zap.NewNop()))

	var r *gin.Engine
	assert.NotPanics(t, func() { r = NewRouter(&config.Config{}, svc, zap.NewNop()) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/api/v1/prompts", nil)
	req.Header.Set("Origin", "chrome-extension://abcdefghijklmnop")
	req.Header.Set("Access-Control-Request-Method", "GET")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
