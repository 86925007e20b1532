package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret-for-unit-tests-32ch!"

func withTestSecret(t *testing.T) {
	t.Helper()
	original := JWTSecret
	if err := SetJWTSecret(testSecret); err != nil {
		t.Fatalf("SetJWTSecret failed: %v", err)
	}
	t.Cleanup(func() { JWTSecret = original })
}

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"account_id": c.GetInt64(AccountIDKey),
			"email":      c.GetString(EmailKey),
		})
	})
	return router
}

func TestSetJWTSecret_Validation(t *testing.T) {
	original := JWTSecret
	defer func() { JWTSecret = original }()

	if err := SetJWTSecret(""); err == nil {
		t.Error("expected error for empty secret")
	}
	if err := SetJWTSecret("too-short"); err == nil {
		t.Error("expected error for short secret")
	}
	if err := SetJWTSecret(testSecret); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	withTestSecret(t)

	token, err := GenerateToken(42, "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.AccountID != 42 {
		t.Errorf("expected account_id 42, got %d", claims.AccountID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("expected email admin@example.com, got %s", claims.Email)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	withTestSecret(t)

	token, err := GenerateToken(1, "admin@example.com", -time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	withTestSecret(t)
	router := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"error":"Unauthorized"}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	withTestSecret(t)
	router := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	withTestSecret(t)
	router := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"error":"Invalid token"}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	withTestSecret(t)
	router := authTestRouter()

	token, err := GenerateToken(7, "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}
