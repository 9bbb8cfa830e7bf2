package booking

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
)

type Handler struct {
	relay Relay
	log   *slog.Logger
}

func NewHandler(relay Relay, log *slog.Logger) *Handler {
	return &Handler{relay: relay, log: log.With(slog.String("component", "booking_handler"))}
}

type bookingResponse struct {
	Success bool   `json:"success"`
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
}

// HandleBooking принимает форму как JSON, urlencoded или multipart.
func (h *Handler) HandleBooking(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, bookingResponse{State: Idle.String(), Message: "invalid body"})
		return
	}

	// одна форма на запрос: состояние между запросами не живёт
	state, err := NewForm(h.relay, h.log).Submit(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, bookingResponse{State: state.Phase.String(), Message: err.Error()})
		return
	}
	if state.Phase != Succeeded {
		writeJSON(w, http.StatusBadGateway, bookingResponse{State: state.Phase.String(), Message: state.Reason})
		return
	}

	writeJSON(w, http.StatusOK, bookingResponse{Success: true, State: state.Phase.String()})
}

func decodeRequest(r *http.Request) (Request, error) {
	var req Request

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil && err != http.ErrNotMultipart {
			return req, err
		}
		req = Request{
			Name:    r.FormValue("name"),
			Phone:   r.FormValue("phone"),
			Service: r.FormValue("service"),
			Date:    r.FormValue("date"),
			Message: r.FormValue("message"),
		}
		return req, nil
	default:
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
