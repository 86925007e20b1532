package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/tmcybertech/portal-api/src/database"
	"github.com/tmcybertech/portal-api/src/services"
)

func seedAdmin(t *testing.T, tdb *database.TestDB, email, password string) {
	t.Helper()
	if _, err := services.SeedAdmin(context.Background(), tdb.Pool, email, password); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		router := newTestRouter(t, tdb, false)
		seedAdmin(t, tdb, "admin@example.com", "hunter2hunter2")

		w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "admin@example.com",
			"password": "hunter2hunter2",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		token, ok := decodeObject(t, w)["token"].(string)
		if !ok || token == "" {
			t.Fatal("expected a token in the response")
		}

		// The issued token is accepted by protected endpoints
		w = doJSON(t, router, http.MethodGet, "/api/employees", token, nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected issued token to be accepted, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestLogin_WrongPassword(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		router := newTestRouter(t, tdb, false)
		seedAdmin(t, tdb, "admin@example.com", "hunter2hunter2")

		w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "admin@example.com",
			"password": "wrong",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
		}
		if got := decodeObject(t, w); got["error"] != "Invalid credentials" {
			t.Errorf("unexpected error message: %v", got["error"])
		}
	})
}

func TestLogin_UnknownEmail(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		router := newTestRouter(t, tdb, false)

		w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "nobody@example.com",
			"password": "whatever",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
		}
		// Same message as a wrong password; the response must not reveal
		// whether the account exists
		if got := decodeObject(t, w); got["error"] != "Invalid credentials" {
			t.Errorf("unexpected error message: %v", got["error"])
		}
	})
}

func TestLogin_MissingFields(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		router := newTestRouter(t, tdb, false)

		w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email": "admin@example.com",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
		}
		if got := decodeObject(t, w); got["error"] != "Email and password are required" {
			t.Errorf("unexpected error message: %v", got["error"])
		}
	})
}

func TestLogin_InvalidJSON(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		router := newTestRouter(t, tdb, false)

		w := doRaw(t, router, http.MethodPost, "/api/auth/login", "", "{broken")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
		if got := decodeObject(t, w); got["error"] != "Invalid JSON payload" {
			t.Errorf("unexpected error message: %v", got["error"])
		}
	})
}

func TestSeedAdmin_OnlyOnce(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		ctx := context.Background()

		has, err := services.HasAdmins(ctx, tdb.Pool)
		if err != nil {
			t.Fatalf("HasAdmins failed: %v", err)
		}
		if has {
			t.Fatal("expected empty admins table")
		}

		seedAdmin(t, tdb, "admin@example.com", "hunter2hunter2")

		has, err = services.HasAdmins(ctx, tdb.Pool)
		if err != nil {
			t.Fatalf("HasAdmins failed: %v", err)
		}
		if !has {
			t.Fatal("expected seeded admin to be visible")
		}

		// Same email twice violates the unique constraint
		if _, err := services.SeedAdmin(ctx, tdb.Pool, "admin@example.com", "other"); err == nil {
			t.Error("expected duplicate seed to fail")
		}
	})
}
