package gormstore

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(ctx context.Context, q *domain.Question) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	choices := q.PossibleAnswers
	if choices == nil {
		choices = []string{}
	}
	rec := &questionRecord{
		Text:            q.Text,
		PossibleAnswers: datatypes.NewJSONSlice(choices),
		CreatedAt:       q.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("insert question: %w", err)
	}

	q.ID = rec.ID
	q.PossibleAnswers = choices
	q.CreatedAt = rec.CreatedAt.UTC()
	return nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id int64) (*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec questionRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrQuestionNotFound)
	}
	return rec.toDomain(), nil
}

func (r *QuestionRepository) List(ctx context.Context) ([]*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var recs []questionRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	out := make([]*domain.Question, len(recs))
	for i := range recs {
		out[i] = recs[i].toDomain()
	}
	return out, nil
}

// Delete removes the question; its answers and their report links cascade.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&questionRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete question: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}
