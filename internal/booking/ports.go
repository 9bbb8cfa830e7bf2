package booking

import (
	"context"
	"errors"
)

// Request: поля формы записи.
type Request struct {
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"required,max=32"`
	Service string `json:"service" validate:"required,oneof=haircut beard complex shave"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Message string `json:"message" validate:"max=2000"`
}

// RelayResponse: ответ forms API.
type RelayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Relay пересылает запись в forms API. Сбой транспорта или разбора
// приходит ошибкой, отказ самого API приходит как Success=false.
type Relay interface {
	Submit(ctx context.Context, req Request) (RelayResponse, error)
}

type Phase int

const (
	Idle Phase = iota
	Pending
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State: единственный статус отправки формы. Reason только для Failed.
type State struct {
	Phase  Phase
	Reason string
}

const (
	DefaultFailure = "Что-то пошло не так"
	NetworkFailure = "Ошибка сети. Попробуйте еще раз."
)

var ErrInFlight = errors.New("booking: submission already in flight")
