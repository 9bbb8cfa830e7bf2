package stats

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Vovarama1992/baza-barbershop/internal/chat"
)

type PostgresRepo struct {
	db *sql.DB
}

// NewRepo хранит счётчики в Postgres. EnsureSchema вызвать один раз на старте.
func NewRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS resolution_stats (
			outcome      TEXT PRIMARY KEY,
			hits         BIGINT NOT NULL DEFAULT 0,
			last_seen_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("create resolution_stats: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Record(ctx context.Context, outcome chat.Outcome) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO resolution_stats (outcome, hits, last_seen_at)
		VALUES ($1, 1, now())
		ON CONFLICT (outcome) DO UPDATE
		SET hits = resolution_stats.hits + 1, last_seen_at = now()
	`, string(outcome))
	return err
}

func (r *PostgresRepo) Counts(ctx context.Context) ([]Counter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT outcome, hits, last_seen_at
		FROM resolution_stats
		ORDER BY outcome ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Counter
	for rows.Next() {
		var c Counter
		var outcome string
		if err := rows.Scan(&outcome, &c.Hits, &c.LastSeenAt); err != nil {
			return nil, err
		}
		c.Outcome = chat.Outcome(outcome)
		out = append(out, c)
	}

	return out, rows.Err()
}
