package stats

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/Vovarama1992/baza-barbershop/internal/chat"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryRepo_Counts(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewMemoryRepo()

	counters, err := repo.Counts(ctx)
	req.NoError(err)
	req.Empty(counters)

	for _, o := range []chat.Outcome{chat.OutcomeFAQ, chat.OutcomeRemote, chat.OutcomeFAQ, chat.OutcomeNetworkError} {
		req.NoError(repo.Record(ctx, o))
	}

	counters, err = repo.Counts(ctx)
	req.NoError(err)
	req.Len(counters, 3)
	req.Equal(chat.OutcomeFAQ, counters[0].Outcome)
	req.Equal(int64(2), counters[0].Hits)
	req.False(counters[0].LastSeenAt.IsZero())
	req.Equal(chat.OutcomeNetworkError, counters[1].Outcome)
	req.Equal(chat.OutcomeRemote, counters[2].Outcome)
}

func TestMemoryRepo_RecordsResolverOutcomes(t *testing.T) {
	req := require.New(t)
	repo := NewMemoryRepo()
	resolver := chat.NewResolver(
		staticMatcher{}, failingRemote{}, "ctx", testLogger(),
		chat.WithTypingDelay(0), chat.WithRecorder(repo),
	)

	_, err := resolver.Resolve(context.Background(), "hello")
	req.NoError(err)

	req.Eventually(func() bool {
		counters, err := repo.Counts(context.Background())
		return err == nil && len(counters) == 1 && counters[0].Outcome == chat.OutcomeNetworkError
	}, 2*time.Second, 5*time.Millisecond)
}

func TestHandler_GetStats(t *testing.T) {
	req := require.New(t)
	repo := NewMemoryRepo()
	req.NoError(repo.Record(context.Background(), chat.OutcomeFAQ))
	req.NoError(repo.Record(context.Background(), chat.OutcomeFAQ))
	req.NoError(repo.Record(context.Background(), chat.OutcomeRemoteFailed))

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(repo, testLogger()))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	req.Equal(http.StatusOK, rec.Code)

	var out map[string]int64
	req.NoError(json.NewDecoder(rec.Body).Decode(&out))
	req.Equal(map[string]int64{"faq": 2, "remote_failed": 1}, out)
}

func TestHandler_GetStatsFailure(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(brokenRepo{}, testLogger()))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// Runs only against a throwaway database.
func TestPostgresRepo(t *testing.T) {
	dsn := os.Getenv("STATS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("STATS_TEST_DATABASE_URL not set")
	}
	req := require.New(t)
	ctx := context.Background()

	db, err := sql.Open("postgres", dsn)
	req.NoError(err)
	defer db.Close()

	repo := NewRepo(db)
	req.NoError(repo.EnsureSchema(ctx))
	_, err = db.ExecContext(ctx, `TRUNCATE resolution_stats`)
	req.NoError(err)

	req.NoError(repo.Record(ctx, chat.OutcomeRemote))
	req.NoError(repo.Record(ctx, chat.OutcomeRemote))
	req.NoError(repo.Record(ctx, chat.OutcomeFAQ))

	counters, err := repo.Counts(ctx)
	req.NoError(err)
	req.Len(counters, 2)
	req.Equal(chat.OutcomeFAQ, counters[0].Outcome)
	req.Equal(int64(1), counters[0].Hits)
	req.Equal(int64(2), counters[1].Hits)
}

type staticMatcher struct{}

func (staticMatcher) Answer(string) (string, bool) { return "", false }

type failingRemote struct{}

func (failingRemote) Reply(context.Context, string, string) (string, error) {
	return "", errors.New("unreachable")
}

type brokenRepo struct{}

func (brokenRepo) Record(context.Context, chat.Outcome) error { return nil }

func (brokenRepo) Counts(context.Context) ([]Counter, error) {
	return nil, errors.New("db down")
}
