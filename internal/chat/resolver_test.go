package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Vovarama1992/baza-barbershop/internal/faq"
)

func newTestResolver(remote Remote, opts ...ResolverOption) *Resolver {
	opts = append([]ResolverOption{WithTypingDelay(0)}, opts...)
	return NewResolver(faq.Default(), remote, faq.SiteContext, testLogger(), opts...)
}

func TestResolver_FAQHitSkipsRemote(t *testing.T) {
	req := require.New(t)
	remote := &fakeRemote{}
	rec := &fakeRecorder{}
	delay := 30 * time.Millisecond
	r := newTestResolver(remote, WithTypingDelay(delay), WithRecorder(rec))

	want, ok := faq.Default().Answer("Сколько стоит борода?")
	req.True(ok)

	start := time.Now()
	reply, err := r.Resolve(context.Background(), "Сколько стоит борода?")
	req.NoError(err)
	req.GreaterOrEqual(time.Since(start), delay)
	req.Equal(want, reply.Text)
	req.Equal(OutcomeFAQ, reply.Outcome)
	req.Empty(remote.Calls())
	req.Eventually(func() bool { return len(rec.Outcomes()) == 1 }, waitFor, 5*time.Millisecond)
	req.Equal([]Outcome{OutcomeFAQ}, rec.Outcomes())
}

func TestResolver_HaircutPriceQuestionHitsFirstEntry(t *testing.T) {
	req := require.New(t)
	remote := &fakeRemote{}
	r := newTestResolver(remote)

	reply, err := r.Resolve(context.Background(), "Сколько стоит стрижка?")
	req.NoError(err)
	req.Equal(OutcomeFAQ, reply.Outcome)
	req.Equal(faq.Default().Entries()[0].Answer, reply.Text)
	req.Empty(remote.Calls())
}

func TestResolver_RemoteBranches(t *testing.T) {
	tests := []struct {
		name    string
		remote  *fakeRemote
		want    string
		outcome Outcome
	}{
		{
			name:    "Remote success is returned verbatim",
			remote:  &fakeRemote{reply: "ok"},
			want:    "ok",
			outcome: OutcomeRemote,
		},
		{
			name:    "Unusable remote answer",
			remote:  &fakeRemote{err: fmt.Errorf("%w: status 500", ErrBadResponse)},
			want:    FallbackMisunderstood,
			outcome: OutcomeRemoteFailed,
		},
		{
			name:    "Network failure",
			remote:  &fakeRemote{err: errors.New("dial tcp: connection refused")},
			want:    FallbackUnreachable,
			outcome: OutcomeNetworkError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			rec := &fakeRecorder{}
			r := newTestResolver(tt.remote, WithRecorder(rec))

			reply, err := r.Resolve(context.Background(), "qwerty123")
			req.NoError(err)
			req.Equal(tt.want, reply.Text)
			req.Equal(tt.outcome, reply.Outcome)

			calls := tt.remote.Calls()
			req.Len(calls, 1)
			req.Equal("qwerty123", calls[0].message)
			req.Equal(faq.SiteContext, calls[0].siteContext)
			req.Eventually(func() bool { return len(rec.Outcomes()) == 1 }, waitFor, 5*time.Millisecond)
			req.Equal([]Outcome{tt.outcome}, rec.Outcomes())
		})
	}
}

func TestResolver_FallbacksAreDistinct(t *testing.T) {
	require.NotEqual(t, FallbackMisunderstood, FallbackUnreachable)
}

func TestResolver_BlankInput(t *testing.T) {
	req := require.New(t)
	remote := &fakeRemote{}
	rec := &fakeRecorder{}
	r := newTestResolver(remote, WithRecorder(rec))

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := r.Resolve(context.Background(), input)
		req.ErrorIs(err, ErrEmptyInput)
	}
	req.Empty(remote.Calls())
	req.Empty(rec.Outcomes())
}

func TestResolver_RecorderFailureDoesNotAffectReply(t *testing.T) {
	req := require.New(t)
	rec := &fakeRecorder{err: errors.New("db down")}
	r := newTestResolver(&fakeRemote{reply: "ok"}, WithRecorder(rec))

	reply, err := r.Resolve(context.Background(), "qwerty123")
	req.NoError(err)
	req.Equal("ok", reply.Text)
}

func TestResolver_SlowRecorderDoesNotHoldReply(t *testing.T) {
	req := require.New(t)
	rec := &blockingRecorder{release: make(chan struct{})}
	t.Cleanup(func() { close(rec.release) })
	r := newTestResolver(&fakeRemote{reply: "ok"}, WithRecorder(rec))

	start := time.Now()
	reply, err := r.Resolve(context.Background(), "qwerty123")
	req.NoError(err)
	req.Equal("ok", reply.Text)
	req.Less(time.Since(start), waitFor)

	req.Eventually(func() bool { return len(rec.Deadlines()) == 1 }, waitFor, 5*time.Millisecond)
	req.Equal([]bool{true}, rec.Deadlines())
}

func TestResolver_CancelledContextCutsTypingDelay(t *testing.T) {
	req := require.New(t)
	r := newTestResolver(&fakeRemote{}, WithTypingDelay(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reply, err := r.Resolve(ctx, "price?")
	req.NoError(err)
	req.Equal(OutcomeFAQ, reply.Outcome)
}
