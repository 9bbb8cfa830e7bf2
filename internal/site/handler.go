package site

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	content Content
}

func NewHandler(content Content) *Handler {
	return &Handler{content: content}
}

func (h *Handler) GetContent(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_ = json.NewEncoder(w).Encode(h.content)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/api/site", h.GetContent)
}
