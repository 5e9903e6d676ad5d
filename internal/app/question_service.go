package app

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/SWiseG/QuizLoop/internal/domain"
)

const (
	// DefaultQuestionLimit is used when the caller does not ask for a count.
	DefaultQuestionLimit = 10
	maxQuestionLimit     = 25
	fallbackLocale       = "en"
)

// QuestionService serves a randomized, localized subset of the question bank.
type QuestionService struct {
	store QuestionStore
	seed  []domain.Question

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{
		store: store,
		seed:  SeedCatalog(),
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// List returns up to limit questions (clamped to 1..25), optionally filtered
// by category, projected to the requested locale. Selection order is uniformly
// randomized per call. An empty category, or the mode names daily/classic,
// means no filter; a filter matching nothing silently falls back to the full set.
func (s *QuestionService) List(ctx context.Context, category, locale string, limit int) ([]domain.LocalizedQuestion, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	all, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	take := clampLimit(limit)
	filtered := filterByCategory(all, normalizeCategory(category))
	if len(filtered) == 0 {
		filtered = all
	}

	s.shuffle(filtered)
	if len(filtered) > take {
		filtered = filtered[:take]
	}

	wantLocale := strings.ToLower(strings.TrimSpace(locale))
	out := make([]domain.LocalizedQuestion, 0, len(filtered))
	for _, q := range filtered {
		out = append(out, Localize(q, wantLocale))
	}
	return out, nil
}

func (s *QuestionService) ensureSeeded(ctx context.Context) error {
	empty, err := s.store.Empty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	return s.store.Seed(ctx, s.seed)
}

func (s *QuestionService) shuffle(questions []domain.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}

// Localize projects a question to the requested locale, falling back to en,
// then to any available translation, then to empty text.
func Localize(q domain.Question, locale string) domain.LocalizedQuestion {
	tr := pickTranslation(q.Translations, locale)
	return domain.LocalizedQuestion{
		ID:           q.ID,
		Category:     q.Category,
		Text:         tr.Text,
		Options:      tr.Options,
		CorrectIndex: q.CorrectIndex,
		Difficulty:   q.Difficulty,
		Explanation:  tr.Explanation,
	}
}

func pickTranslation(translations []domain.QuestionTranslation, locale string) domain.QuestionTranslation {
	for _, tr := range translations {
		if tr.Locale == locale {
			return tr
		}
	}
	for _, tr := range translations {
		if tr.Locale == fallbackLocale {
			return tr
		}
	}
	if len(translations) > 0 {
		return translations[0]
	}
	return domain.QuestionTranslation{Options: []string{}}
}

func filterByCategory(questions []domain.Question, category string) []domain.Question {
	if category == "" {
		return questions
	}
	var out []domain.Question
	for _, q := range questions {
		if strings.ToLower(q.Category) == category {
			out = append(out, q)
		}
	}
	return out
}

// normalizeCategory lowers and trims the filter value. The mode names daily
// and classic denote game modes, not categories, and mean no filter.
func normalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "daily" || c == "classic" {
		return ""
	}
	return c
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxQuestionLimit {
		return maxQuestionLimit
	}
	return limit
}
