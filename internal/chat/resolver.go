package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

const (
	Greeting = "Привет! Я помощник BAZA Barbershop. Чем могу помочь?"

	// remote ответил, но ответ непригоден
	FallbackMisunderstood = "Извини, я не совсем понял. Попробуй спросить о записи, ценах или адресе. Или позвони нам: +420 XXX XXX XXX"
	// remote недоступен
	FallbackUnreachable = "Сейчас не могу подключиться к серверу. Напиши нам в Instagram @baza_prague или позвони!"

	DefaultTypingDelay = 800 * time.Millisecond

	// предел на одну запись статистики
	recordTimeout = 5 * time.Second
)

type Resolver struct {
	matcher     Matcher
	remote      Remote
	recorder    Recorder
	siteContext string
	typingDelay time.Duration
	log         *slog.Logger
}

type ResolverOption func(*Resolver)

func WithTypingDelay(d time.Duration) ResolverOption {
	return func(r *Resolver) { r.typingDelay = d }
}

func WithRecorder(rec Recorder) ResolverOption {
	return func(r *Resolver) { r.recorder = rec }
}

func NewResolver(
	matcher Matcher,
	remote Remote,
	siteContext string,
	log *slog.Logger,
	opts ...ResolverOption,
) *Resolver {
	r := &Resolver{
		matcher:     matcher,
		remote:      remote,
		siteContext: siteContext,
		typingDelay: DefaultTypingDelay,
		log:         log.With(slog.String("component", "resolver")),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve возвращает ровно один ответ на непустое сообщение. Ошибки remote
// превращаются в fallback-текст, единственная ошибка: ErrEmptyInput.
// Статистика пишется в фоне и ответ не задерживает.
func (r *Resolver) Resolve(ctx context.Context, text string) (Reply, error) {
	if strings.TrimSpace(text) == "" {
		return Reply{}, ErrEmptyInput
	}

	reply := r.resolve(ctx, text)
	r.record(ctx, reply.Outcome)
	return reply, nil
}

func (r *Resolver) resolve(ctx context.Context, text string) Reply {
	if answer, ok := r.matcher.Answer(text); ok {
		r.wait(ctx)
		r.log.Debug("faq hit", slog.String("text", short(text)))
		return Reply{Text: answer, Outcome: OutcomeFAQ}
	}

	answer, err := r.remote.Reply(ctx, text, r.siteContext)
	switch {
	case err == nil:
		return Reply{Text: answer, Outcome: OutcomeRemote}
	case errors.Is(err, ErrBadResponse):
		r.log.Warn("remote reply unusable", slog.Any("error", err))
		return Reply{Text: FallbackMisunderstood, Outcome: OutcomeRemoteFailed}
	default:
		r.log.Warn("remote unreachable", slog.Any("error", err))
		return Reply{Text: FallbackUnreachable, Outcome: OutcomeNetworkError}
	}
}

// wait имитирует набор текста перед готовым ответом из FAQ.
func (r *Resolver) wait(ctx context.Context) {
	if r.typingDelay <= 0 {
		return
	}
	t := time.NewTimer(r.typingDelay)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (r *Resolver) record(ctx context.Context, outcome Outcome) {
	if r.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	go func() {
		defer cancel()
		if err := r.recorder.Record(ctx, outcome); err != nil {
			r.log.Error("record outcome", slog.String("outcome", string(outcome)), slog.Any("error", err))
		}
	}()
}

func short(s string) string {
	if r := []rune(s); len(r) > 180 {
		return string(r[:180]) + "..."
	}
	return s
}
