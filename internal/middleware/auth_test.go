package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestOptionalResolvesValidToken(t *testing.T) {
	auth := NewJWTAuth("test-secret")
	userID := uuid.New()

	token, err := auth.GenerateAccessToken(userID, "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	var resolved *uuid.UUID
	handler := auth.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if resolved == nil {
		t.Fatal("expected identity to be resolved")
	}
	if *resolved != userID {
		t.Errorf("resolved %s, want %s", resolved, userID)
	}
}

func TestOptionalContinuesAnonymously(t *testing.T) {
	auth := NewJWTAuth("test-secret")

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"not bearer format", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var resolved *uuid.UUID
			called := false
			handler := auth.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				resolved = GetUserID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/chat", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if !called {
				t.Fatal("request should continue without a valid token")
			}
			if resolved != nil {
				t.Errorf("expected nil identity, got %s", resolved)
			}
			if rr.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", rr.Code)
			}
		})
	}
}

func TestOptionalRejectsWrongSecret(t *testing.T) {
	other := NewJWTAuth("other-secret")
	token, err := other.GenerateAccessToken(uuid.New(), "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	auth := NewJWTAuth("test-secret")
	var resolved *uuid.UUID
	handler := auth.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if resolved != nil {
		t.Error("token signed with a different secret must not resolve an identity")
	}
}

func TestRequiredMiddlewareRejectsMissingToken(t *testing.T) {
	auth := NewJWTAuth("test-secret")
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}
