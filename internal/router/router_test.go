package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/allanninal/recipe-finder/internal/config"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetupRouter_Ping(t *testing.T) {
	r := SetupRouter(&config.Config{EnvVars: config.EnvVars{Port: "8080"}})

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Errorf("body = %q, want pong", w.Body.String())
	}
}

func TestSetupRouter_ServesPage(t *testing.T) {
	r := SetupRouter(&config.Config{EnvVars: config.EnvVars{Port: "8080"}})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "search-form") {
		t.Error("page missing search form")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
}
