package app_test

import (
	"context"
	"testing"

	"github.com/SWiseG/QuizLoop/internal/app"
	"github.com/SWiseG/QuizLoop/internal/domain"
	"github.com/SWiseG/QuizLoop/internal/infra/memory"
)

func TestListSeedsEmptyStoreOnce(t *testing.T) {
	ctx := context.Background()
	store := memory.NewQuestionStore()
	service := app.NewQuestionService(store)

	if _, err := service.List(ctx, "", "en", 10); err != nil {
		t.Fatalf("list: %v", err)
	}
	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	seeded := len(all)
	if seeded == 0 {
		t.Fatalf("expected store to be seeded on first read")
	}

	if _, err := service.List(ctx, "", "en", 10); err != nil {
		t.Fatalf("list again: %v", err)
	}
	all, _ = store.All(ctx)
	if len(all) != seeded {
		t.Fatalf("expected seeding once, store grew from %d to %d", seeded, len(all))
	}
}

func TestListClampsLimit(t *testing.T) {
	ctx := context.Background()
	service := app.NewQuestionService(memory.NewQuestionStore())

	questions, err := service.List(ctx, "", "en", 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(questions) > 25 {
		t.Fatalf("expected at most 25 questions, got %d", len(questions))
	}

	questions, err = service.List(ctx, "", "en", -3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected limit clamped to 1, got %d", len(questions))
	}
}

func TestListFiltersByCategoryCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	service := app.NewQuestionService(memory.NewQuestionStore())

	questions, err := service.List(ctx, "SCIENCE", "en", 25)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(questions) == 0 {
		t.Fatalf("expected science questions")
	}
	for _, q := range questions {
		if q.Category != "Science" {
			t.Fatalf("expected only Science, got %q", q.Category)
		}
	}
}

func TestListUnknownCategoryFallsBackToFullSet(t *testing.T) {
	ctx := context.Background()
	service := app.NewQuestionService(memory.NewQuestionStore())

	questions, err := service.List(ctx, "underwater-basket-weaving", "en", 25)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(questions) == 0 {
		t.Fatalf("expected fallback to the unfiltered set")
	}
}

func TestListModeNamesMeanNoFilter(t *testing.T) {
	ctx := context.Background()
	service := app.NewQuestionService(memory.NewQuestionStore())

	for _, mode := range []string{"daily", "classic", "Daily"} {
		questions, err := service.List(ctx, mode, "en", 25)
		if err != nil {
			t.Fatalf("list %q: %v", mode, err)
		}
		categories := make(map[string]bool)
		for _, q := range questions {
			categories[q.Category] = true
		}
		if len(categories) < 2 {
			t.Fatalf("expected %q to return mixed categories, got %v", mode, categories)
		}
	}
}

func TestListLocaleProjectionAndFallback(t *testing.T) {
	ctx := context.Background()
	service := app.NewQuestionService(memory.NewQuestionStore())

	ptBR, err := service.List(ctx, "", "pt-BR", 25)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	foundPortuguese := false
	for _, q := range ptBR {
		if q.Text == "Qual é o símbolo químico do ouro?" {
			foundPortuguese = true
		}
	}
	if !foundPortuguese {
		t.Fatalf("expected pt-BR translations to be served")
	}

	// Unknown locale falls back to en.
	unknown, err := service.List(ctx, "", "fr", 25)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, q := range unknown {
		if q.Text == "" {
			t.Fatalf("expected en fallback text for question %s", q.ID)
		}
	}
}

func TestLocalizeFallbackChain(t *testing.T) {
	q := domain.Question{
		ID:           "q1",
		Category:     "Science",
		CorrectIndex: 0,
		Translations: []domain.QuestionTranslation{
			{Locale: "pt-br", Text: "texto", Options: []string{"a", "b"}},
		},
	}

	got := app.Localize(q, "de")
	if got.Text != "texto" {
		t.Fatalf("expected any-translation fallback, got %q", got.Text)
	}

	empty := app.Localize(domain.Question{ID: "q2"}, "en")
	if empty.Text != "" || len(empty.Options) != 0 {
		t.Fatalf("expected empty projection for untranslated question, got %+v", empty)
	}
}
