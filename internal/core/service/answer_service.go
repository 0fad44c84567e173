package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/surveykit/questionnaire/internal/core/domain"
	"github.com/surveykit/questionnaire/internal/core/ports"
	"github.com/surveykit/questionnaire/internal/pkg/metrics"
)

type answerService struct {
	repo      ports.AnswerRepository
	questions ports.QuestionService
	log       zerolog.Logger
}

// NewAnswerService returns an AnswerService. Questions are resolved through
// the question service so lookups go through its cache.
func NewAnswerService(repo ports.AnswerRepository, questions ports.QuestionService, log zerolog.Logger) ports.AnswerService {
	return &answerService{repo: repo, questions: questions, log: log}
}

// Create records a user's answer to a question. A value that does not index
// into the question's possible answers is stored anyway and logged.
func (s *answerService) Create(ctx context.Context, userID, questionID int64, value int) (*domain.Answer, error) {
	q, err := s.questions.Get(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}

	if !q.HasChoice(value) {
		s.log.Warn().
			Int64("question_id", questionID).
			Int("value", value).
			Int("choices", len(q.PossibleAnswers)).
			Msg("answer value outside possible answers")
	}

	a := &domain.Answer{
		UserID:     userID,
		QuestionID: questionID,
		Value:      value,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	metrics.AnswersRecordedTotal.Inc()
	s.log.Info().Int64("answer_id", a.ID).Int64("user_id", userID).Int64("question_id", questionID).Msg("answer recorded")
	return a, nil
}

func (s *answerService) Get(ctx context.Context, id int64) (*domain.Answer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *answerService) ListByUser(ctx context.Context, userID int64) ([]*domain.Answer, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes the answer; storage drops it from every report containing it.
func (s *answerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("answer_id", id).Msg("answer deleted")
	return nil
}
