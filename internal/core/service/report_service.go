package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/surveykit/questionnaire/internal/core/domain"
	"github.com/surveykit/questionnaire/internal/core/ports"
	"github.com/surveykit/questionnaire/internal/pkg/metrics"
)

type reportService struct {
	reports ports.ReportRepository
	answers ports.AnswerRepository
	log     zerolog.Logger
}

// NewReportService returns a ReportService implementation.
func NewReportService(reports ports.ReportRepository, answers ports.AnswerRepository, log zerolog.Logger) ports.ReportService {
	return &reportService{reports: reports, answers: answers, log: log}
}

func (s *reportService) Create(ctx context.Context, userID int64) (*domain.Report, error) {
	r := &domain.Report{
		UserID:    userID,
		AnswerIDs: []int64{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reports.Create(ctx, r); err != nil {
		return nil, err
	}
	s.log.Info().Int64("report_id", r.ID).Int64("user_id", userID).Msg("report created")
	return r, nil
}

func (s *reportService) Get(ctx context.Context, id int64) (*ports.ReportDetail, error) {
	r, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	answers, err := s.reports.Answers(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.ReportDetail{Report: r, Answers: answers}, nil
}

func (s *reportService) ListByUser(ctx context.Context, userID int64) ([]*domain.Report, error) {
	return s.reports.ListByUser(ctx, userID)
}

// AddAnswer puts the answer into the report's answer set and persists the
// relation immediately. Adding a member twice is a no-op. The answer's owner
// is not required to match the report's owner.
func (s *reportService) AddAnswer(ctx context.Context, reportID, answerID int64) (*domain.Report, error) {
	r, err := s.reports.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	a, err := s.answers.FindByID(ctx, answerID)
	if err != nil {
		return nil, err
	}

	if a.UserID != r.UserID {
		s.log.Warn().
			Int64("report_id", reportID).
			Int64("answer_id", answerID).
			Int64("report_user_id", r.UserID).
			Int64("answer_user_id", a.UserID).
			Msg("answer owner differs from report owner")
	}

	added, err := s.reports.AddAnswer(ctx, reportID, answerID)
	if err != nil {
		return nil, err
	}

	if added {
		metrics.ReportAnswersTotal.WithLabelValues("added").Inc()
		r.AnswerIDs = append(r.AnswerIDs, answerID)
	} else {
		metrics.ReportAnswersTotal.WithLabelValues("duplicate").Inc()
		if !r.HasAnswer(answerID) {
			r.AnswerIDs = append(r.AnswerIDs, answerID)
		}
	}

	s.log.Debug().Int64("report_id", reportID).Int64("answer_id", answerID).Bool("added", added).Msg("answer attached to report")
	return r, nil
}

// Delete removes the report and its answer links; the answers themselves stay.
func (s *reportService) Delete(ctx context.Context, id int64) error {
	return s.reports.Delete(ctx, id)
}
