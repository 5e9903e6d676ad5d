package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SWiseG/QuizLoop/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ProfileStore persists user profiles in Postgres, keyed by the auth subject.
type ProfileStore struct {
	pool *pgxpool.Pool
}

func NewProfileStore(pool *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{pool: pool}
}

func (s *ProfileStore) Get(ctx context.Context, userID string) (domain.UserProfile, bool, error) {
	var p domain.UserProfile
	err := s.pool.QueryRow(ctx, `
		SELECT id, created_at, locale, streak_current, streak_best,
		       total_games, total_correct, total_answered, accuracy_pct, coins, has_premium
		FROM user_profiles WHERE id = $1`, userID).
		Scan(&p.ID, &p.CreatedAt, &p.Locale, &p.StreakCurrent, &p.StreakBest,
			&p.TotalGames, &p.TotalCorrect, &p.TotalAnswered, &p.AccuracyPct, &p.Coins, &p.HasPremium)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UserProfile{}, false, nil
	}
	if err != nil {
		return domain.UserProfile{}, false, fmt.Errorf("get profile: %w", err)
	}
	return p, true, nil
}

func (s *ProfileStore) Put(ctx context.Context, p domain.UserProfile) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO user_profiles (id, created_at, locale, streak_current, streak_best,
		                           total_games, total_correct, total_answered, accuracy_pct, coins, has_premium)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			locale = EXCLUDED.locale,
			streak_current = EXCLUDED.streak_current,
			streak_best = EXCLUDED.streak_best,
			total_games = EXCLUDED.total_games,
			total_correct = EXCLUDED.total_correct,
			total_answered = EXCLUDED.total_answered,
			accuracy_pct = EXCLUDED.accuracy_pct,
			coins = EXCLUDED.coins,
			has_premium = EXCLUDED.has_premium`,
		p.ID, p.CreatedAt, p.Locale, p.StreakCurrent, p.StreakBest,
		p.TotalGames, p.TotalCorrect, p.TotalAnswered, p.AccuracyPct, p.Coins, p.HasPremium)
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

// AdEventStore persists ad impression records in Postgres.
type AdEventStore struct {
	pool *pgxpool.Pool
}

func NewAdEventStore(pool *pgxpool.Pool) *AdEventStore {
	return &AdEventStore{pool: pool}
}

func (s *AdEventStore) Insert(ctx context.Context, e domain.AdEvent) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO ad_events (id, user_id, type, placement, occurred_at)
		VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.UserID, e.Type, e.Placement, e.Timestamp)
	if err != nil {
		return fmt.Errorf("insert ad event: %w", err)
	}
	return nil
}
