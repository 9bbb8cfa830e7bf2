package ai

import (
	"context"
	"errors"
)

// AI: внешний интеллект, не знает ни про сайт, ни про виджет
type AI interface {
	GetReply(
		ctx context.Context,
		systemPrompt string,
		input string,
	) (string, error)
}

var ErrEmptyCompletion = errors.New("ai: completion has no choices")
