package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atorres/portfolio-api/internal/contact"
	"github.com/atorres/portfolio-api/internal/site"
	"github.com/atorres/portfolio-api/pkg/logging"
)

func testConfig() *Config {
	logger := logging.New("error")
	return &Config{
		Logger: logger,
		// No sender/verifier wired: the contact route answers but reports
		// itself misconfigured.
		ContactHandler: contact.NewHandler("", nil, nil, nil, nil, logger),
		SiteHandler:    site.NewHandler(logger),
	}
}

func TestHealth(t *testing.T) {
	r := New(testConfig())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestContactRouteWired(t *testing.T) {
	r := New(testConfig())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)

	// Routed to the handler, which is unconfigured in this test.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "server_misconfigured")
}

func TestContactRouteRejectsGet(t *testing.T) {
	r := New(testConfig())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSiteRoutesWired(t *testing.T) {
	r := New(testConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sections", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	r := New(testConfig())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSApplied(t *testing.T) {
	cfg := testConfig()
	cfg.CORSAllowedOrigins = []string{"https://example.com"}
	r := New(cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
