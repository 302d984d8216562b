package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"TRIPVANA_BACK-END/internal/config"
	"TRIPVANA_BACK-END/internal/utils"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	id := uuid.New()

	token, err := GenerateToken(id, "user@example.test", utils.RoleUser, cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := ValidateToken(token, cfg)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.IdentityID != id {
		t.Errorf("identity: got %s, want %s", claims.IdentityID, id)
	}
	if claims.Email != "user@example.test" {
		t.Errorf("email: got %q", claims.Email)
	}
	if claims.Role != utils.RoleUser {
		t.Errorf("role: got %q, want %q", claims.Role, utils.RoleUser)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "user@example.test", utils.RoleUser, testJWTConfig())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken(token, &config.JWTConfig{Secret: "other-secret"}); err == nil {
		t.Error("token signed with another secret must not validate")
	}
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testJWTConfig()
	id := uuid.New()
	token, err := GenerateToken(id, "user@example.test", utils.RoleUser, cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotID uuid.UUID
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetIdentityID(r.Context())
		w.WriteHeader(http.StatusOK)
	}, cfg)

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)
			if rec.Code != tc.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
	if gotID != id {
		t.Errorf("context identity: got %s, want %s", gotID, id)
	}
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, utils.RoleOrganizer)

	req := httptest.NewRequest(http.MethodGet, "/api/organizer/trips", nil)
	ctx := utils.WithIdentity(req.Context(), uuid.New(), "owner@acme.test", utils.RoleOrganizer)
	rec := httptest.NewRecorder()
	handler(rec, req.WithContext(ctx))
	if rec.Code != http.StatusOK {
		t.Errorf("organizer: got %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/organizer/trips", nil)
	ctx = utils.WithIdentity(req.Context(), uuid.New(), "user@example.test", utils.RoleUser)
	rec = httptest.NewRecorder()
	handler(rec, req.WithContext(ctx))
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong role: got %d, want 403", rec.Code)
	}

	// No identity on the context at all.
	req = httptest.NewRequest(http.MethodGet, "/api/organizer/trips", nil)
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("no identity: got %d, want 403", rec.Code)
	}
}
