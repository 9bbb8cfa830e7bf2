package chat

import (
	"context"
	"errors"
	"time"
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message: одна запись переписки. Seq: порядковый номер вставки.
type Message struct {
	Seq  int       `json:"seq"`
	Role Role      `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Outcome: какая ветка дала ответ бота
type Outcome string

const (
	OutcomeFAQ          Outcome = "faq"
	OutcomeRemote       Outcome = "remote"
	OutcomeRemoteFailed Outcome = "remote_failed"
	OutcomeNetworkError Outcome = "network_error"
)

type Reply struct {
	Text    string
	Outcome Outcome
}

var (
	ErrEmptyInput      = errors.New("chat: empty input")
	ErrBadResponse     = errors.New("chat: remote returned an unusable response")
	ErrSessionNotFound = errors.New("chat: session not found")
)

// Remote: внешний chat endpoint. Если вызов прошёл, но ответ непригоден,
// реализация оборачивает ErrBadResponse. Любая другая ошибка считается
// сбоем транспорта.
type Remote interface {
	Reply(ctx context.Context, message string, siteContext string) (string, error)
}

// Recorder: получает исход каждого разрешённого сообщения
type Recorder interface {
	Record(ctx context.Context, outcome Outcome) error
}

// Matcher: локальный поиск по FAQ
type Matcher interface {
	Answer(input string) (string, bool)
}
