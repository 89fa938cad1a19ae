package post

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/lawbuddy/fixtures"
	"github.com/a-h/lawbuddy/models"
)

func TestHandler(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	h := New(log, fixtures.NewStore(fixtures.Default()))

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "invalid JSON returns 400",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank queries return 400",
			body:           `{"query":"  ","top_k":5,"min_score":0.2}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "top k out of range returns 400",
			body:           `{"query":"murder","top_k":0,"min_score":0.2}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "min score out of range returns 400",
			body:           `{"query":"murder","top_k":5,"min_score":1.5}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "valid queries return 200",
			body:           `{"query":"What constitutes murder?","top_k":2,"min_score":0.2,"return_context":true}`,
			expectedStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(tt.body)))
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}

	t.Run("responses match the client schema", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"query":"What constitutes murder?","top_k":2,"min_score":0.2,"return_context":true}`
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body)))

		var resp models.AskPostResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Sources) != 2 {
			t.Errorf("expected 2 sources, got %d", len(resp.Sources))
		}
		for _, s := range resp.Sources {
			if s.Score < 0.2 {
				t.Errorf("expected sources with a score of at least 0.2, got %v", s.Score)
			}
		}
		if resp.Context == "" {
			t.Error("expected context to be returned")
		}
	})
}
