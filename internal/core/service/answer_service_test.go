package service

import (
	"context"
	"errors"
	"testing"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

func newAnswerFixture(t *testing.T) (*stubAnswerRepo, *domain.Question, *answerService) {
	t.Helper()
	questions := NewQuestionService(newStubQuestionRepo(), nil, discardLogger)
	q, err := questions.Create(context.Background(), "Rate us", []string{"bad", "ok", "great"})
	if err != nil {
		t.Fatalf("seed question: %v", err)
	}
	repo := newStubAnswerRepo()
	svc := NewAnswerService(repo, questions, discardLogger).(*answerService)
	return repo, q, svc
}

func TestAnswerService_Create_PersistsValues(t *testing.T) {
	repo, q, svc := newAnswerFixture(t)

	a, err := svc.Create(context.Background(), 7, q.ID, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stored, err := repo.FindByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.UserID != 7 || stored.QuestionID != q.ID || stored.Value != 2 {
		t.Fatalf("answer not stored unchanged: %+v", stored)
	}
}

func TestAnswerService_Create_OutOfRangeValueIsKept(t *testing.T) {
	_, q, svc := newAnswerFixture(t)

	a, err := svc.Create(context.Background(), 7, q.ID, 99)
	if err != nil {
		t.Fatalf("out-of-range values are not rejected, got %v", err)
	}
	if a.Value != 99 {
		t.Fatalf("value changed: %d", a.Value)
	}
}

func TestAnswerService_Create_UnknownQuestion(t *testing.T) {
	repo, _, svc := newAnswerFixture(t)

	if _, err := svc.Create(context.Background(), 7, 999, 0); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
	if len(repo.answers) != 0 {
		t.Fatalf("no answer should be stored")
	}
}

func TestAnswerService_ListByUser(t *testing.T) {
	_, q, svc := newAnswerFixture(t)

	_, _ = svc.Create(context.Background(), 1, q.ID, 0)
	_, _ = svc.Create(context.Background(), 2, q.ID, 1)
	_, _ = svc.Create(context.Background(), 1, q.ID, 2)

	list, err := svc.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 answers for user 1, got %d", len(list))
	}
	for _, a := range list {
		if a.UserID != 1 {
			t.Fatalf("foreign answer leaked: %+v", a)
		}
	}
}

func TestAnswerService_Delete(t *testing.T) {
	repo, q, svc := newAnswerFixture(t)

	a, err := svc.Create(context.Background(), 7, q.ID, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.answers) != 0 {
		t.Fatalf("answer still stored")
	}
	if err := svc.Delete(context.Background(), a.ID); !errors.Is(err, domain.ErrAnswerNotFound) {
		t.Fatalf("expected ErrAnswerNotFound, got %v", err)
	}
}
