package stats

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Vovarama1992/baza-barbershop/internal/chat"
)

type memoryRepo struct {
	mu       sync.RWMutex
	counters map[chat.Outcome]*Counter
	now      func() time.Time
}

// NewMemoryRepo: счётчики живут только до рестарта процесса.
func NewMemoryRepo() Repo {
	return &memoryRepo{
		counters: make(map[chat.Outcome]*Counter),
		now:      time.Now,
	}
}

func (m *memoryRepo) Record(_ context.Context, outcome chat.Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counters[outcome]
	if !ok {
		c = &Counter{Outcome: outcome}
		m.counters[outcome] = c
	}
	c.Hits++
	c.LastSeenAt = m.now()
	return nil
}

func (m *memoryRepo) Counts(_ context.Context) ([]Counter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Counter, 0, len(m.counters))
	for _, c := range m.counters {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b Counter) int {
		return cmp.Compare(a.Outcome, b.Outcome)
	})
	return out, nil
}
