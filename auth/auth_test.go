package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAuth(t *testing.T) {
	apiKeyToUserName := map[string]string{
		"test-api-key-1": "user-1",
		"test-api-key-2": "user-2",
	}
	tests := []struct {
		name           string
		keys           map[string]string
		req            func() *http.Request
		expectedStatus int
		expectedUser   string
	}{
		{
			name:           "no auth header returns 401",
			keys:           apiKeyToUserName,
			req:            func() *http.Request { return httptest.NewRequest("GET", "/health", nil) },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "auth header not in map returns 401",
			keys: apiKeyToUserName,
			req: func() *http.Request {
				req := httptest.NewRequest("GET", "/health", nil)
				req.Header.Set("Authorization", "Bearer not-in-map")
				return req
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "auth header in map returns 200",
			keys: apiKeyToUserName,
			req: func() *http.Request {
				req := httptest.NewRequest("GET", "/health", nil)
				req.Header.Set("Authorization", "Bearer test-api-key-1")
				return req
			},
			expectedStatus: http.StatusOK,
			expectedUser:   "user-1",
		},
		{
			name: "auth header doesn't need Bearer prefix",
			keys: apiKeyToUserName,
			req: func() *http.Request {
				req := httptest.NewRequest("POST", "/ask", nil)
				req.Header.Set("Authorization", "test-api-key-2")
				return req
			},
			expectedStatus: http.StatusOK,
			expectedUser:   "user-2",
		},
		{
			name:           "no keys allows anonymous access",
			keys:           nil,
			req:            func() *http.Request { return httptest.NewRequest("GET", "/health", nil) },
			expectedStatus: http.StatusOK,
			expectedUser:   Anonymous,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var user string
			h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var ok bool
				user, ok = GetUser(r)
				if !ok {
					t.Error("expected user to be set")
				}
				w.WriteHeader(http.StatusOK)
			})

			auth := New(tt.keys, h)
			w := httptest.NewRecorder()
			auth.ServeHTTP(w, tt.req())
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if user != tt.expectedUser {
				t.Errorf("expected user to be %s, got %s", tt.expectedUser, user)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Run("an empty name disables auth", func(t *testing.T) {
		m, err := LoadFromFile("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m != nil {
			t.Errorf("expected nil map, got %v", m)
		}
	})
	t.Run("keys are loaded", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "apikeys.json")
		if err := os.WriteFile(name, []byte(`{"key-1":"user-1"}`), 0o600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		m, err := LoadFromFile(name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(map[string]string{"key-1": "user-1"}, m); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("missing files are an error", func(t *testing.T) {
		if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("expected error")
		}
	})
}
