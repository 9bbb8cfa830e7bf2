package stats

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

type Handler struct {
	repo Repo
	log  *slog.Logger
}

func NewHandler(repo Repo, log *slog.Logger) *Handler {
	return &Handler{repo: repo, log: log.With(slog.String("component", "stats_handler"))}
}

// GetStats отдаёт {outcome: hits}.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	counters, err := h.repo.Counts(r.Context())
	if err != nil {
		h.log.Error("load counters", slog.Any("error", err))
		http.Error(w, "stats unavailable", http.StatusInternalServerError)
		return
	}

	out := lo.SliceToMap(counters, func(c Counter) (string, int64) {
		return string(c.Outcome), c.Hits
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/api/stats", h.GetStats)
}
