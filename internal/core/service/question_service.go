package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/surveykit/questionnaire/internal/core/domain"
	"github.com/surveykit/questionnaire/internal/core/ports"
	"github.com/surveykit/questionnaire/internal/pkg/metrics"
)

// QuestionCache abstracts the read-through question cache (Redis).
type QuestionCache interface {
	Get(ctx context.Context, id int64) (*domain.Question, bool, error)
	Set(ctx context.Context, q *domain.Question) error
	Invalidate(ctx context.Context, id int64) error
}

type noopQuestionCache struct{}

func (noopQuestionCache) Get(context.Context, int64) (*domain.Question, bool, error) {
	return nil, false, nil
}
func (noopQuestionCache) Set(context.Context, *domain.Question) error { return nil }
func (noopQuestionCache) Invalidate(context.Context, int64) error     { return nil }

type questionService struct {
	repo  ports.QuestionRepository
	cache QuestionCache
	log   zerolog.Logger
}

// NewQuestionService returns a QuestionService. A nil cache disables caching.
func NewQuestionService(repo ports.QuestionRepository, cache QuestionCache, log zerolog.Logger) ports.QuestionService {
	if cache == nil {
		cache = noopQuestionCache{}
	}
	return &questionService{repo: repo, cache: cache, log: log}
}

func (s *questionService) Create(ctx context.Context, text string, possibleAnswers []string) (*domain.Question, error) {
	if possibleAnswers == nil {
		possibleAnswers = []string{}
	}
	q := &domain.Question{
		Text:            text,
		PossibleAnswers: possibleAnswers,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}

	s.log.Info().Int64("question_id", q.ID).Int("choices", len(q.PossibleAnswers)).Msg("question created")
	return q, nil
}

// Get serves from the cache when possible. Cache failures are logged and the
// repository answers instead.
func (s *questionService) Get(ctx context.Context, id int64) (*domain.Question, error) {
	cached, ok, err := s.cache.Get(ctx, id)
	switch {
	case err != nil:
		metrics.QuestionCacheTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Int64("question_id", id).Msg("question cache lookup failed")
	case ok:
		metrics.QuestionCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		metrics.QuestionCacheTotal.WithLabelValues("miss").Inc()
	}

	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, q); err != nil {
		s.log.Warn().Err(err).Int64("question_id", id).Msg("failed to cache question")
	}
	return q, nil
}

func (s *questionService) List(ctx context.Context) ([]*domain.Question, error) {
	return s.repo.List(ctx)
}

// Delete removes the question (storage cascades to its answers) and drops it
// from the cache.
func (s *questionService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("question_id", id).Msg("failed to invalidate cached question")
	}
	s.log.Info().Int64("question_id", id).Msg("question deleted")
	return nil
}
