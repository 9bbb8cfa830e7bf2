package chat

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/widget/sessions", func(r chi.Router) {
		r.Post("/", h.CreateSession)
		r.Get("/{id}", h.GetSession)
		r.Post("/{id}/toggle", h.Toggle)
		r.Post("/{id}/messages", h.PostMessage)
		r.Delete("/{id}", h.DeleteSession)
	})
}
