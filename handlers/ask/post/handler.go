package post

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/lawbuddy/auth"
	"github.com/a-h/lawbuddy/fixtures"
	"github.com/a-h/lawbuddy/models"
	"github.com/a-h/respond"
)

func New(log *slog.Logger, store *fixtures.Store) Handler {
	return Handler{
		log:   log,
		store: store,
	}
}

type Handler struct {
	log   *slog.Logger
	store *fixtures.Store
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.AskPostRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.log.Error("failed to decode body", slog.Any("error", err))
		respond.WithError(w, "failed to decode body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		respond.WithError(w, "query is required", http.StatusBadRequest)
		return
	}
	if req.TopK < 1 || req.TopK > 10 {
		respond.WithError(w, "top_k must be between 1 and 10", http.StatusBadRequest)
		return
	}
	if req.MinScore < 0 || req.MinScore > 1 {
		respond.WithError(w, "min_score must be between 0 and 1", http.StatusBadRequest)
		return
	}

	user, _ := auth.GetUser(r)
	resp := h.store.Set.Match(req.Query).Response(req)
	h.log.Info("answered query", slog.String("user", user), slog.Int("sources", len(resp.Sources)), slog.String("requestID", r.Header.Get("X-Request-ID")))

	respond.WithJSON(w, resp, http.StatusOK)
}
