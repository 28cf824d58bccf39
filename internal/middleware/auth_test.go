package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cloakroom-backend/internal/auth"
	"cloakroom-backend/internal/config"
)

func newTestMiddleware() *AuthMiddleware {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "cloakroom-backend"
	return NewAuthMiddleware(auth.NewJWTManager(cfg), nil)
}

func TestRequireAdminRejectsUnauthenticated(t *testing.T) {
	m := newTestMiddleware()
	handler := m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler must not run")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("DELETE", "/api/checkouts/1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestGetRoleFromContextMissing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if role, ok := GetRoleFromContext(req.Context()); ok || role != "" {
		t.Fatalf("GetRoleFromContext = %q, %v; want empty, false", role, ok)
	}
}
