package ports

import (
	"context"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

// QuestionRepository defines persistence for questions.
type QuestionRepository interface {
	Create(ctx context.Context, q *domain.Question) error
	FindByID(ctx context.Context, id int64) (*domain.Question, error)
	List(ctx context.Context) ([]*domain.Question, error)
	// Delete removes the question and every answer referencing it.
	Delete(ctx context.Context, id int64) error
}
