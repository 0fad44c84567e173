package ports

import (
	"context"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

type QuestionService interface {
	Create(ctx context.Context, text string, possibleAnswers []string) (*domain.Question, error)
	Get(ctx context.Context, id int64) (*domain.Question, error)
	List(ctx context.Context) ([]*domain.Question, error)
	Delete(ctx context.Context, id int64) error
}
