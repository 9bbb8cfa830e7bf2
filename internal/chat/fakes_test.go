package chat

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type remoteCall struct {
	message     string
	siteContext string
}

// fakeRemote answers with reply/err. When gate is set, each call blocks
// until a value is sent on gate[message].
type fakeRemote struct {
	mu    sync.Mutex
	calls []remoteCall
	reply string
	err   error
	gate  map[string]chan struct{}
}

func (f *fakeRemote) Reply(ctx context.Context, message string, siteContext string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, remoteCall{message: message, siteContext: siteContext})
	gate := f.gate[message]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if f.err != nil {
		return "", f.err
	}
	if f.reply != "" {
		return f.reply, nil
	}
	return "echo: " + message, nil
}

func (f *fakeRemote) Calls() []remoteCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]remoteCall(nil), f.calls...)
}

type fakeRecorder struct {
	mu       sync.Mutex
	outcomes []Outcome
	err      error
}

func (f *fakeRecorder) Record(_ context.Context, outcome Outcome) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, outcome)
	return f.err
}

func (f *fakeRecorder) Outcomes() []Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Outcome(nil), f.outcomes...)
}

// blockingRecorder holds every Record call until release is closed or the
// call's context ends.
type blockingRecorder struct {
	release     chan struct{}
	mu          sync.Mutex
	hasDeadline []bool
}

func (b *blockingRecorder) Record(ctx context.Context, _ Outcome) error {
	_, ok := ctx.Deadline()
	b.mu.Lock()
	b.hasDeadline = append(b.hasDeadline, ok)
	b.mu.Unlock()

	select {
	case <-b.release:
	case <-ctx.Done():
	}
	return ctx.Err()
}

func (b *blockingRecorder) Deadlines() []bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]bool(nil), b.hasDeadline...)
}

type panickingRemote struct{}

func (panickingRemote) Reply(context.Context, string, string) (string, error) {
	panic("boom")
}
