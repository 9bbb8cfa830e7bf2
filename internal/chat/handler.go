package chat

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	sessions *Sessions
	log      *slog.Logger
}

func NewHandler(sessions *Sessions, log *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		log:      log.With(slog.String("component", "chat_handler")),
	}
}

type sessionResponse struct {
	ID string `json:"id"`
	Snapshot
}

// CreateSession: новый виджет с приветствием
func (h *Handler) CreateSession(w http.ResponseWriter, _ *http.Request) {
	id, widget := h.sessions.Create()
	h.log.Info("session created", slog.String("session", id))
	writeJSON(w, http.StatusCreated, sessionResponse{ID: id, Snapshot: widget.Snapshot()})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, widget, ok := h.widget(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, Snapshot: widget.Snapshot()})
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, widget, ok := h.widget(w, r)
	if !ok {
		return
	}
	widget.Toggle()
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, Snapshot: widget.Snapshot()})
}

// PostMessage: сообщение посетителя. С wait=true ответ ждёт реплику бота
// или отмену запроса.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	id, widget, ok := h.widget(w, r)
	if !ok {
		return
	}

	var payload struct {
		Text string `json:"text"`
		Wait bool   `json:"wait"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	done, err := widget.Submit(r.Context(), payload.Text)
	if errors.Is(err, ErrEmptyInput) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	status := http.StatusAccepted
	if payload.Wait {
		select {
		case <-done:
			status = http.StatusOK
		case <-r.Context().Done():
			return
		}
	}

	writeJSON(w, status, sessionResponse{ID: id, Snapshot: widget.Snapshot()})
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.sessions.Delete(id); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) widget(w http.ResponseWriter, r *http.Request) (string, *Widget, bool) {
	id := chi.URLParam(r, "id")
	widget, err := h.sessions.Get(id)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return "", nil, false
	}
	return id, widget, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
