package get

import (
	"log/slog"
	"net/http"

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
	count := h.store.DocumentCount()
	respond.WithJSON(w, models.HealthGetResponse{
		Status:           "healthy",
		VectorStoreCount: &count,
	}, http.StatusOK)
}
