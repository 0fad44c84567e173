package service

import (
	"context"
	"errors"
	"testing"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

func TestQuestionService_Create(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo, nil, discardLogger)

	q, err := svc.Create(context.Background(), "Favourite colour?", []string{"red", "green"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if q.ID == 0 || q.Text != "Favourite colour?" || len(q.PossibleAnswers) != 2 {
		t.Fatalf("unexpected question: %+v", q)
	}
	if q.String() != "Favourite colour?" {
		t.Fatalf("unexpected string form: %q", q.String())
	}
}

func TestQuestionService_Create_NilChoicesStoredEmpty(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo, nil, discardLogger)

	q, err := svc.Create(context.Background(), "Open question", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if q.PossibleAnswers == nil || len(q.PossibleAnswers) != 0 {
		t.Fatalf("expected empty, non-nil choices, got %#v", q.PossibleAnswers)
	}
}

func TestQuestionService_Get_ReadThroughCache(t *testing.T) {
	repo := newStubQuestionRepo()
	cache := newStubQuestionCache()
	svc := NewQuestionService(repo, cache, discardLogger)

	q, _ := svc.Create(context.Background(), "Cached?", []string{"yes", "no"})

	if _, err := svc.Get(context.Background(), q.ID); err != nil {
		t.Fatalf("first Get: %v", err)
	}
	if _, err := svc.Get(context.Background(), q.ID); err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if repo.finds != 1 {
		t.Fatalf("expected repository to be hit once, got %d", repo.finds)
	}
	if _, ok := cache.entries[q.ID]; !ok {
		t.Fatalf("question was not cached")
	}
}

func TestQuestionService_Get_CacheErrorFallsBack(t *testing.T) {
	repo := newStubQuestionRepo()
	cache := newStubQuestionCache()
	cache.getErr = errors.New("redis down")
	svc := NewQuestionService(repo, cache, discardLogger)

	q, _ := svc.Create(context.Background(), "Fallback?", []string{"a"})

	got, err := svc.Get(context.Background(), q.ID)
	if err != nil {
		t.Fatalf("Get should fall back to repository, got %v", err)
	}
	if got.Text != "Fallback?" {
		t.Fatalf("unexpected question: %+v", got)
	}
}

func TestQuestionService_Get_NotFound(t *testing.T) {
	svc := NewQuestionService(newStubQuestionRepo(), newStubQuestionCache(), discardLogger)

	if _, err := svc.Get(context.Background(), 42); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestQuestionService_Delete_InvalidatesCache(t *testing.T) {
	repo := newStubQuestionRepo()
	cache := newStubQuestionCache()
	svc := NewQuestionService(repo, cache, discardLogger)

	q, _ := svc.Create(context.Background(), "Short lived", []string{"x"})
	_, _ = svc.Get(context.Background(), q.ID)

	if err := svc.Delete(context.Background(), q.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := cache.entries[q.ID]; ok {
		t.Fatalf("cache entry survived delete")
	}
	if _, err := svc.Get(context.Background(), q.ID); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound after delete, got %v", err)
	}
}

func TestQuestionService_List(t *testing.T) {
	svc := NewQuestionService(newStubQuestionRepo(), nil, discardLogger)

	_, _ = svc.Create(context.Background(), "one", nil)
	_, _ = svc.Create(context.Background(), "two", nil)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Text != "one" || list[1].Text != "two" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
