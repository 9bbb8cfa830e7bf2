package chat

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Snapshot: то, что рисует виджет
type Snapshot struct {
	Open     bool      `json:"open"`
	Typing   bool      `json:"typing"`
	Input    string    `json:"input"`
	Messages []Message `json:"messages"`
}

// Widget: видимость, индикатор набора и буфер ввода одного окна чата плюс
// переписка. Ответы ложатся в порядке готовности, индикатор горит, пока
// хоть одно сообщение без ответа.
type Widget struct {
	mu       sync.Mutex
	open     bool
	pending  int
	input    string
	conv     *Conversation
	resolver *Resolver
	log      *slog.Logger
}

func NewWidget(resolver *Resolver, log *slog.Logger) *Widget {
	return &Widget{
		conv:     NewConversation(Greeting),
		resolver: resolver,
		log:      log.With(slog.String("component", "widget")),
	}
}

func (w *Widget) Toggle() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = !w.open
	return w.open
}

func (w *Widget) Open() {
	w.mu.Lock()
	w.open = true
	w.mu.Unlock()
}

// Close прячет окно, ответы в полёте всё равно попадут в переписку.
func (w *Widget) Close() {
	w.mu.Lock()
	w.open = false
	w.mu.Unlock()
}

func (w *Widget) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

func (w *Widget) Typing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending > 0
}

func (w *Widget) SetInput(text string) {
	w.mu.Lock()
	w.input = text
	w.mu.Unlock()
}

func (w *Widget) Input() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input
}

// HandleKey отправляет буфер по Enter. На остальные клавиши возвращает уже
// закрытый канал без сообщений.
func (w *Widget) HandleKey(ctx context.Context, key string) (<-chan Message, error) {
	if key != "Enter" {
		return closedReply, nil
	}
	return w.Send(ctx)
}

var closedReply = func() <-chan Message {
	ch := make(chan Message)
	close(ch)
	return ch
}()

// Send отправляет текущий буфер ввода.
func (w *Widget) Send(ctx context.Context) (<-chan Message, error) {
	return w.Submit(ctx, w.Input())
}

// Submit добавляет сообщение пользователя и ищет ответ в фоне. Канал
// отдаёт сообщение бота после его добавления и закрывается. Пустой текст
// ничего не меняет.
func (w *Widget) Submit(ctx context.Context, text string) (<-chan Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	w.mu.Lock()
	w.conv.Append(RoleUser, text)
	w.input = ""
	w.pending++
	w.mu.Unlock()

	done := make(chan Message, 1)
	go w.resolve(context.WithoutCancel(ctx), text, done)
	return done, nil
}

func (w *Widget) resolve(ctx context.Context, text string, done chan<- Message) {
	reply := Reply{Text: FallbackUnreachable, Outcome: OutcomeNetworkError}

	defer func() {
		if p := recover(); p != nil {
			w.log.Error("resolver panic", slog.Any("panic", p))
		}

		w.mu.Lock()
		msg := w.conv.Append(RoleBot, reply.Text)
		w.pending--
		w.mu.Unlock()

		done <- msg
		close(done)
	}()

	if r, err := w.resolver.Resolve(ctx, text); err == nil {
		reply = r
	}
}

func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{
		Open:     w.open,
		Typing:   w.pending > 0,
		Input:    w.input,
		Messages: w.conv.Messages(),
	}
}

func (w *Widget) Messages() []Message {
	return w.conv.Messages()
}
