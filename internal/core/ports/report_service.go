package ports

import (
	"context"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

// ReportDetail is a report together with its resolved answers.
type ReportDetail struct {
	Report  *domain.Report
	Answers []*domain.Answer
}

type ReportService interface {
	Create(ctx context.Context, userID int64) (*domain.Report, error)
	Get(ctx context.Context, id int64) (*ReportDetail, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Report, error)
	AddAnswer(ctx context.Context, reportID, answerID int64) (*domain.Report, error)
	Delete(ctx context.Context, id int64) error
}
