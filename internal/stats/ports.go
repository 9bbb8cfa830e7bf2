package stats

import (
	"context"
	"time"

	"github.com/Vovarama1992/baza-barbershop/internal/chat"
)

// Counter: сколько раз случился исход. Текст сообщений не храним.
type Counter struct {
	Outcome    chat.Outcome `json:"outcome"`
	Hits       int64        `json:"hits"`
	LastSeenAt time.Time    `json:"last_seen_at"`
}

// Repo: счётчики исходов, заодно chat.Recorder
type Repo interface {
	Record(ctx context.Context, outcome chat.Outcome) error
	Counts(ctx context.Context) ([]Counter, error)
}
