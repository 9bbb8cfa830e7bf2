package assistant

import (
	"context"
	"errors"
)

var (
	ErrEmptyMessage = errors.New("assistant: empty message")
	ErrUnavailable  = errors.New("assistant: model unavailable")
)

// Service отвечает на вопросы, которых нет в FAQ
type Service interface {
	Reply(ctx context.Context, message string, siteContext string) (string, error)
}
