// Package storage persists run results: PostgreSQL for the durable record
// of runs and detected value bets, Redis for short-lived alert cooldowns.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/mvdberg/valuebet/internal/pkg/config"
	"github.com/mvdberg/valuebet/internal/pkg/models"
)

type PostgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage opens the connection, verifies it and creates the
// schema when missing.
func NewPostgresStorage(cfg *config.PostgresConfig) (*PostgresStorage, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	s := &PostgresStorage{db: db}
	if err := s.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("postgres storage initialized")
	return s, nil
}

func (s *PostgresStorage) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id UUID PRIMARY KEY,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NOT NULL,
		anchor_events INTEGER NOT NULL,
		soft_events INTEGER NOT NULL,
		matched_pairs INTEGER NOT NULL,
		value_bets INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS value_bets (
		id SERIAL PRIMARY KEY,
		run_id UUID NOT NULL REFERENCES runs(id),
		league VARCHAR(100) NOT NULL,
		kickoff_utc TIMESTAMP NOT NULL,
		home VARCHAR(200) NOT NULL,
		away VARCHAR(200) NOT NULL,
		market VARCHAR(50) NOT NULL,
		outcome VARCHAR(50) NOT NULL,
		bookmaker VARCHAR(50) NOT NULL,
		soft_odds DECIMAL(10, 4) NOT NULL,
		anchor_odds DECIMAL(10, 4) NOT NULL,
		true_prob DECIMAL(10, 6) NOT NULL,
		soft_prob DECIMAL(10, 6) NOT NULL,
		edge_pct DECIMAL(10, 4) NOT NULL,
		recommended_stake DECIMAL(12, 2) NOT NULL,
		expected_value DECIMAL(12, 2) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_value_bets_run_id ON value_bets(run_id);
	CREATE INDEX IF NOT EXISTS idx_value_bets_kickoff ON value_bets(kickoff_utc);
	CREATE INDEX IF NOT EXISTS idx_value_bets_edge ON value_bets(edge_pct DESC);
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// SaveRun stores the run summary and its value bets in one transaction.
func (s *PostgresStorage) SaveRun(ctx context.Context, run models.RunSummary, bets []models.ValueBet) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, anchor_events, soft_events, matched_pairs, value_bets)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		run.ID, run.StartedAt, run.FinishedAt,
		run.AnchorEvents, run.SoftEvents, run.MatchedPairs, run.ValueBets)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO value_bets (run_id, league, kickoff_utc, home, away, market, outcome,
			bookmaker, soft_odds, anchor_odds, true_prob, soft_prob, edge_pct,
			recommended_stake, expected_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range bets {
		_, err := stmt.ExecContext(ctx, run.ID, b.League, b.Kickoff, b.Home, b.Away,
			b.Market, b.Outcome, b.Bookmaker, b.SoftOdds, b.AnchorOdds,
			b.AnchorProb, b.SoftProb, b.EdgePercentage,
			b.RecommendedStake, b.ExpectedValue)
		if err != nil {
			return fmt.Errorf("insert value bet %s/%s: %w", b.Market, b.Outcome, err)
		}
	}

	return tx.Commit()
}

// LatestValueBets returns the bets of the most recent run, best edge first.
func (s *PostgresStorage) LatestValueBets(ctx context.Context, limit int) ([]models.ValueBet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT league, kickoff_utc, home, away, market, outcome, bookmaker,
			soft_odds, anchor_odds, true_prob, soft_prob, edge_pct,
			recommended_stake, expected_value
		FROM value_bets
		WHERE run_id = (SELECT id FROM runs ORDER BY started_at DESC LIMIT 1)
		ORDER BY edge_pct DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query value bets: %w", err)
	}
	defer rows.Close()

	var bets []models.ValueBet
	for rows.Next() {
		var b models.ValueBet
		var kickoff time.Time
		if err := rows.Scan(&b.League, &kickoff, &b.Home, &b.Away, &b.Market,
			&b.Outcome, &b.Bookmaker, &b.SoftOdds, &b.AnchorOdds,
			&b.AnchorProb, &b.SoftProb, &b.EdgePercentage,
			&b.RecommendedStake, &b.ExpectedValue); err != nil {
			return nil, fmt.Errorf("scan value bet: %w", err)
		}
		b.Kickoff = kickoff.UTC().Format(time.RFC3339)
		bets = append(bets, b)
	}
	return bets, rows.Err()
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
