package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdminToken_RejectsMissingToken(t *testing.T) {
	handler := RequireAdminToken("secret", okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/events/e1/lock", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdminToken_RejectsWrongToken(t *testing.T) {
	handler := RequireAdminToken("secret", okHandler())

	req := httptest.NewRequest(http.MethodPost, "/v1/events/e1/lock", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdminToken_RejectsWhenUnconfigured(t *testing.T) {
	handler := RequireAdminToken("", okHandler())

	req := httptest.NewRequest(http.MethodPost, "/v1/events/e1/lock", nil)
	req.Header.Set("X-Admin-Token", "anything")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdminToken_AllowsValidToken(t *testing.T) {
	handler := RequireAdminToken("secret", okHandler())

	req := httptest.NewRequest(http.MethodPost, "/v1/events/e1/lock", nil)
	req.Header.Set("X-Admin-Token", "secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS([]string{"https://league.example"}, okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/engine/runs", nil)
	req.Header.Set("Origin", "https://league.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://league.example" {
		t.Fatalf("unexpected allow origin: %q", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	handler := CORS([]string{"https://league.example"}, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/engine/runs", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow origin header, got %q", got)
	}
}
