package ports

import (
	"context"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

type AnswerService interface {
	Create(ctx context.Context, userID, questionID int64, value int) (*domain.Answer, error)
	Get(ctx context.Context, id int64) (*domain.Answer, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Answer, error)
	Delete(ctx context.Context, id int64) error
}
