package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Vovarama1992/baza-barbershop/internal/ai"
)

type service struct {
	ai      ai.AI
	timeout time.Duration
	log     *slog.Logger
}

func NewService(aiClient ai.AI, timeout time.Duration, log *slog.Logger) Service {
	return &service{
		ai:      aiClient,
		timeout: timeout,
		log:     log.With(slog.String("component", "assistant")),
	}
}

func (s *service) Reply(ctx context.Context, message string, siteContext string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.log.Info("new message", slog.String("text", short(message)))

	raw, err := s.ai.GetReply(ctx, SystemPrompt(siteContext), message)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		return "", fmt.Errorf("%w: blank completion", ErrUnavailable)
	}

	s.log.Debug("reply", slog.String("text", short(reply)))
	return reply, nil
}

func short(s string) string {
	if r := []rune(s); len(r) > 180 {
		return string(r[:180]) + "..."
	}
	return s
}
