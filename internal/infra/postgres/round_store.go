package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/SWiseG/QuizLoop/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// RoundStore persists append-only round rows in Postgres.
type RoundStore struct {
	pool *pgxpool.Pool
}

func NewRoundStore(pool *pgxpool.Pool) *RoundStore {
	return &RoundStore{pool: pool}
}

func (s *RoundStore) Insert(ctx context.Context, round domain.Round) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO rounds (id, user_id, mode, score, correct_count, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		round.ID, round.UserID, round.Mode, round.Score, round.CorrectCount, round.StartedAt, round.EndedAt)
	if err != nil {
		return fmt.Errorf("insert round: %w", err)
	}
	return nil
}

func (s *RoundStore) ListSince(ctx context.Context, since time.Time) ([]domain.Round, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, mode, score, correct_count, started_at, ended_at
		FROM rounds
		WHERE started_at >= $1`, since)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	defer rows.Close()

	var out []domain.Round
	for rows.Next() {
		var r domain.Round
		if err := rows.Scan(&r.ID, &r.UserID, &r.Mode, &r.Score, &r.CorrectCount, &r.StartedAt, &r.EndedAt); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	return out, nil
}
