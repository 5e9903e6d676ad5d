package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/SWiseG/QuizLoop/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// QuestionStore persists the question bank in Postgres. Options are stored
// pipe-joined in a single text column; no option text contains '|'.
type QuestionStore struct {
	pool *pgxpool.Pool
}

func NewQuestionStore(pool *pgxpool.Pool) *QuestionStore {
	return &QuestionStore{pool: pool}
}

func (s *QuestionStore) All(ctx context.Context) ([]domain.Question, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT q.id, q.category, q.correct_index, q.difficulty,
		       t.locale, t.text, t.options, COALESCE(t.explanation, '')
		FROM questions q
		JOIN question_translations t ON t.question_id = q.id
		ORDER BY q.id, t.locale`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*domain.Question)
	var order []string
	for rows.Next() {
		var (
			id, category, difficulty       string
			correctIndex                   int
			locale, text, options, explain string
		)
		if err := rows.Scan(&id, &category, &correctIndex, &difficulty, &locale, &text, &options, &explain); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q, ok := byID[id]
		if !ok {
			q = &domain.Question{ID: id, Category: category, CorrectIndex: correctIndex, Difficulty: difficulty}
			byID[id] = q
			order = append(order, id)
		}
		q.Translations = append(q.Translations, domain.QuestionTranslation{
			Locale:      locale,
			Text:        text,
			Options:     splitOptions(options),
			Explanation: explain,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	out := make([]domain.Question, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, nil
}

func (s *QuestionStore) Seed(ctx context.Context, questions []domain.Question) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed questions: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, q := range questions {
		if _, err := tx.Exec(ctx, `
			INSERT INTO questions (id, category, correct_index, difficulty)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			q.ID, q.Category, q.CorrectIndex, q.Difficulty); err != nil {
			return fmt.Errorf("insert question %s: %w", q.ID, err)
		}
		for _, tr := range q.Translations {
			if _, err := tx.Exec(ctx, `
				INSERT INTO question_translations (question_id, locale, text, options, explanation)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (question_id, locale) DO NOTHING`,
				q.ID, tr.Locale, tr.Text, joinOptions(tr.Options), tr.Explanation); err != nil {
				return fmt.Errorf("insert translation %s/%s: %w", q.ID, tr.Locale, err)
			}
		}
	}
	return tx.Commit(ctx)
}

func (s *QuestionStore) Empty(ctx context.Context) (bool, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		return false, fmt.Errorf("count questions: %w", err)
	}
	return count == 0, nil
}

func joinOptions(options []string) string {
	return strings.Join(options, "|")
}

func splitOptions(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, "|")
}
