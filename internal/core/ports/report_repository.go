package ports

import (
	"context"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

// ReportRepository defines persistence for reports and their answer set.
type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) error
	// FindByID returns the report with AnswerIDs populated.
	FindByID(ctx context.Context, id int64) (*domain.Report, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Report, error)
	// AddAnswer inserts the answer into the report's set. added is false when
	// the answer was already a member; the call is then a no-op.
	AddAnswer(ctx context.Context, reportID, answerID int64) (added bool, err error)
	// Answers returns the report's answers ordered by ID.
	Answers(ctx context.Context, reportID int64) ([]*domain.Answer, error)
	Delete(ctx context.Context, id int64) error
}
