package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tmcybertech/portal-api/src/config"
	"github.com/tmcybertech/portal-api/src/database"
	"github.com/tmcybertech/portal-api/src/middleware"
)

const testJWTSecret = "test-secret-for-unit-tests-32ch!"

// newTestRouter builds the full route table against the test database
func newTestRouter(t *testing.T, tdb *database.TestDB, rawQueryEnabled bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	original := middleware.JWTSecret
	if err := middleware.SetJWTSecret(testJWTSecret); err != nil {
		t.Fatalf("SetJWTSecret failed: %v", err)
	}
	t.Cleanup(func() { middleware.JWTSecret = original })

	cfg := &config.Config{
		FrontendURL:     "http://localhost:5173",
		TokenTTL:        time.Hour,
		RawQueryEnabled: rawQueryEnabled,
	}

	return NewRouter(database.NewDatabaseFromPool(tdb.Pool), cfg)
}

// testToken returns a valid bearer token for protected endpoints
func testToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateToken(1, "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	return token
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doRaw performs a request with a verbatim body
func doRaw(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeObject parses a JSON object response
func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	return out
}

// decodeArray parses a JSON array response
func decodeArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	return out
}
