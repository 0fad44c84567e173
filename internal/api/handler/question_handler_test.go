package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

func TestQuestionHandler_Create(t *testing.T) {
	stub := &stubQuestionService{
		createFn: func(ctx context.Context, text string, choices []string) (*domain.Question, error) {
			if text != "How was it?" || len(choices) != 2 {
				t.Fatalf("unexpected args: %q %v", text, choices)
			}
			return &domain.Question{ID: 3, Text: text, PossibleAnswers: choices}, nil
		},
	}

	c, rec := newContext(http.MethodPost, "/v1/questions", `{"text":"How was it?","possible_answers":["bad","good"]}`, 1, domain.RoleStaff)
	if err := NewQuestionHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var got domain.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != 3 || got.PossibleAnswers[1] != "good" {
		t.Fatalf("unexpected question: %+v", got)
	}
}

func TestQuestionHandler_Create_Validation(t *testing.T) {
	stub := &stubQuestionService{
		createFn: func(context.Context, string, []string) (*domain.Question, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	for _, body := range []string{
		`{"possible_answers":["a"]}`,
		`{"text":"Q","possible_answers":["a",""]}`,
	} {
		c, _ := newContext(http.MethodPost, "/v1/questions", body, 1, domain.RoleStaff)
		assertHTTPError(t, NewQuestionHandler(stub).Create(c), http.StatusUnprocessableEntity)
	}
}

func TestQuestionHandler_ListAndGet(t *testing.T) {
	stub := &stubQuestionService{
		listFn: func(context.Context) ([]*domain.Question, error) {
			return []*domain.Question{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}, nil
		},
		getFn: func(ctx context.Context, id int64) (*domain.Question, error) {
			if id != 2 {
				return nil, domain.ErrQuestionNotFound
			}
			return &domain.Question{ID: 2, Text: "b"}, nil
		},
	}
	h := NewQuestionHandler(stub)

	c, rec := newContext(http.MethodGet, "/v1/questions", "", 1, domain.RoleUser)
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	var list []domain.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil || len(list) != 2 {
		t.Fatalf("unexpected list %s (%v)", rec.Body.String(), err)
	}

	c, rec = newContext(http.MethodGet, "/v1/questions/2", "", 1, domain.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("2")
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
