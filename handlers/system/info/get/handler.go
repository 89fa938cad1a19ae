package get

import (
	"log/slog"
	"net/http"

	"github.com/a-h/lawbuddy/fixtures"
	"github.com/a-h/lawbuddy/models"
	"github.com/a-h/respond"
)

func New(log *slog.Logger, store *fixtures.Store, version string) Handler {
	return Handler{
		log:     log,
		store:   store,
		version: version,
	}
}

type Handler struct {
	log     *slog.Logger
	store   *fixtures.Store
	version string
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.WithJSON(w, models.MockSystemInfo{
		Service:              "lawbuddy-mock",
		Version:              h.version,
		Fixtures:             len(h.store.Set.Fixtures),
		DocumentsInitialized: h.store.Initialized(),
		StartedAt:            h.store.StartedAt,
	}, http.StatusOK)
}
