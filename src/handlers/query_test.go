package handlers

import (
	"net/http"
	"testing"

	"github.com/tmcybertech/portal-api/src/database"
)

func TestQuery_DisabledByDefault(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		router := newTestRouter(t, tdb, false)
		token := testToken(t)

		w := doJSON(t, router, http.MethodPost, "/api/query", token, map[string]any{
			"query": "SELECT 1",
		})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404 when gateway disabled, got %d", w.Code)
		}
	})
}

func TestQuery_Select(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		router := newTestRouter(t, tdb, true)
		token := testToken(t)

		if _, err := tdb.CreateTestEmployee("Grace Hopper", "grace@example.com", "Admiral"); err != nil {
			t.Fatalf("failed to create test employee: %v", err)
		}

		w := doJSON(t, router, http.MethodPost, "/api/query", token, map[string]any{
			"query":  "SELECT name, position FROM employees WHERE email = $1",
			"params": []any{"grace@example.com"},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		rows := decodeArray(t, w)
		if len(rows) != 1 || rows[0]["name"] != "Grace Hopper" {
			t.Errorf("unexpected rows: %v", rows)
		}
	})
}

func TestQuery_RequiresToken(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		router := newTestRouter(t, tdb, true)

		w := doJSON(t, router, http.MethodPost, "/api/query", "", map[string]any{
			"query": "SELECT 1",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", w.Code)
		}
	})
}

func TestQuery_MissingQuery(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		router := newTestRouter(t, tdb, true)
		token := testToken(t)

		w := doJSON(t, router, http.MethodPost, "/api/query", token, map[string]any{
			"params": []any{1},
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
		}
		if got := decodeObject(t, w); got["error"] != "Query is required" {
			t.Errorf("unexpected error message: %v", got["error"])
		}
	})
}

func TestQuery_ExecutionErrorIsOpaque(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		router := newTestRouter(t, tdb, true)
		token := testToken(t)

		w := doJSON(t, router, http.MethodPost, "/api/query", token, map[string]any{
			"query": "SELECT * FROM table_that_does_not_exist",
		})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d: %s", w.Code, w.Body.String())
		}
		// The driver's error text stays out of the response
		if got := decodeObject(t, w); got["error"] != "Failed to execute query" {
			t.Errorf("unexpected error message: %v", got["error"])
		}
	})
}
