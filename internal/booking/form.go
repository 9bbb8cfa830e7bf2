package booking

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate обрезает пробелы в полях и проверяет их.
func Validate(req *Request) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Service = strings.TrimSpace(req.Service)
	req.Date = strings.TrimSpace(req.Date)
	req.Message = strings.TrimSpace(req.Message)
	return validate.Struct(req)
}

// Book отправляет уже провалидированную заявку и переводит результат в
// конечное состояние. Без ретраев.
func Book(ctx context.Context, relay Relay, req Request, log *slog.Logger) State {
	resp, err := relay.Submit(ctx, req)
	if err != nil {
		log.Warn("booking relay failed", slog.Any("error", err))
		return State{Phase: Failed, Reason: NetworkFailure}
	}
	if !resp.Success {
		reason := resp.Message
		if reason == "" {
			reason = DefaultFailure
		}
		log.Warn("booking refused", slog.String("reason", reason))
		return State{Phase: Failed, Reason: reason}
	}

	log.Info("booking relayed", slog.String("service", req.Service), slog.String("date", req.Date))
	return State{Phase: Succeeded}
}

// Form: state machine отправки формы записи.
type Form struct {
	mu    sync.Mutex
	relay Relay
	state State
	draft Request
	log   *slog.Logger
}

func NewForm(relay Relay, log *slog.Logger) *Form {
	return &Form{relay: relay, log: log.With(slog.String("component", "booking_form"))}
}

// Submit валидирует req и отправляет. Невалидный ввод возвращает ошибку
// валидации и состояние не меняет. Повторный submit во время Pending даёт
// ErrInFlight. Успех очищает черновик.
func (f *Form) Submit(ctx context.Context, req Request) (State, error) {
	if err := Validate(&req); err != nil {
		return f.State(), err
	}

	f.mu.Lock()
	if f.state.Phase == Pending {
		f.mu.Unlock()
		return State{Phase: Pending}, ErrInFlight
	}
	f.state = State{Phase: Pending}
	f.draft = req
	f.mu.Unlock()

	next := Book(ctx, f.relay, req, f.log)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = next
	if next.Phase == Succeeded {
		f.draft = Request{}
	}
	return next, nil
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Draft: последняя отправленная заявка, живёт до успешной отправки.
func (f *Form) Draft() Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Reset закрывает экран успеха или ошибки.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Phase != Pending {
		f.state = State{Phase: Idle}
	}
}
