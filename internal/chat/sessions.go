package chat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultSessionTTL = 30 * time.Minute

type session struct {
	widget   *Widget
	lastSeen time.Time
}

// Sessions держит по одному виджету на посетителя, только в памяти.
// Сессии без обращений дольше ttl вычищает Run.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*session
	resolver *Resolver
	ttl      time.Duration
	now      func() time.Time
	log      *slog.Logger
}

type SessionsOption func(*Sessions)

// WithSessionTTL: 0 отключает вычистку.
func WithSessionTTL(ttl time.Duration) SessionsOption {
	return func(s *Sessions) { s.ttl = ttl }
}

func NewSessions(resolver *Resolver, log *slog.Logger, opts ...SessionsOption) *Sessions {
	s := &Sessions{
		sessions: make(map[string]*session),
		resolver: resolver,
		ttl:      DefaultSessionTTL,
		now:      time.Now,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sessions) Create() (string, *Widget) {
	id := uuid.NewString()
	w := NewWidget(s.resolver, s.log)

	s.mu.Lock()
	s.sessions[id] = &session{widget: w, lastSeen: s.now()}
	s.mu.Unlock()

	return id, w
}

// Get продлевает сессию.
func (s *Sessions) Get(id string) (*Widget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	return sess.widget, nil
}

// Delete закрывает виджет. Ответы в полёте допишутся в уже отвязанный виджет.
func (s *Sessions) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// EvictIdle удаляет сессии, к которым не обращались дольше ttl.
// Виджет с неразрешённым ответом не трогаем.
func (s *Sessions) EvictIdle() int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	evicted := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.After(cutoff) || sess.widget.Typing() {
			continue
		}
		delete(s.sessions, id)
		evicted++
	}
	return evicted
}

// Run вычищает простаивающие сессии каждые ttl/2, пока не отменён ctx.
func (s *Sessions) Run(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}

	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(); n > 0 {
				s.log.Info("evicted idle sessions", slog.Int("count", n), slog.Int("live", s.Len()))
			}
		}
	}
}
