package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

type AnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

func (r *AnswerRepository) Create(ctx context.Context, a *domain.Answer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := &answerRecord{
		UserID:     a.UserID,
		QuestionID: a.QuestionID,
		Value:      a.Value,
		CreatedAt:  a.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("%w: %w", domain.ErrInvalidReference, err)
		}
		return fmt.Errorf("insert answer: %w", err)
	}

	a.ID = rec.ID
	a.CreatedAt = rec.CreatedAt.UTC()
	return nil
}

func (r *AnswerRepository) FindByID(ctx context.Context, id int64) (*domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec answerRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrAnswerNotFound)
	}
	return rec.toDomain(), nil
}

func (r *AnswerRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var recs []answerRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	return answersToDomain(recs), nil
}

// Delete removes the answer and, by cascade, its report links.
func (r *AnswerRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&answerRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete answer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAnswerNotFound
	}
	return nil
}

func answersToDomain(recs []answerRecord) []*domain.Answer {
	out := make([]*domain.Answer, len(recs))
	for i := range recs {
		out[i] = recs[i].toDomain()
	}
	return out
}
