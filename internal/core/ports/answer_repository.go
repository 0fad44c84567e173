package ports

import (
	"context"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

// AnswerRepository defines persistence for answers.
type AnswerRepository interface {
	// Create inserts the answer. A dangling user or question reference yields
	// domain.ErrInvalidReference.
	Create(ctx context.Context, a *domain.Answer) error
	FindByID(ctx context.Context, id int64) (*domain.Answer, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Answer, error)
	Delete(ctx context.Context, id int64) error
}
