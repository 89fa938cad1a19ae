package get

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/lawbuddy/fixtures"
	"github.com/a-h/lawbuddy/models"
)

func TestHandler(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := fixtures.NewStore(fixtures.Default())
	h := New(log, store)

	get := func() (resp models.HealthGetResponse) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return resp
	}

	if resp := get(); resp.VectorStoreCount == nil || *resp.VectorStoreCount != 0 {
		t.Errorf("expected a count of 0 before initialization, got %v", resp.VectorStoreCount)
	}
	n := store.Initialize()
	if resp := get(); resp.DocumentCount() != n {
		t.Errorf("expected a count of %d after initialization, got %d", n, resp.DocumentCount())
	}
}
