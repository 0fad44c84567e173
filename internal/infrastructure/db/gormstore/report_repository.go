package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, rep *domain.Report) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := &reportRecord{UserID: rep.UserID, CreatedAt: rep.CreatedAt}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("%w: %w", domain.ErrInvalidReference, err)
		}
		return fmt.Errorf("insert report: %w", err)
	}

	rep.ID = rec.ID
	rep.CreatedAt = rec.CreatedAt.UTC()
	if rep.AnswerIDs == nil {
		rep.AnswerIDs = []int64{}
	}
	return nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id int64) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec reportRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrReportNotFound)
	}

	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&reportAnswerRecord{}).
		Where("report_id = ?", id).
		Order("answer_id").
		Pluck("answer_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("load report answers: %w", err)
	}
	return rec.toDomain(ids), nil
}

func (r *ReportRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var recs []reportRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	if len(recs) == 0 {
		return []*domain.Report{}, nil
	}

	reportIDs := make([]int64, len(recs))
	for i := range recs {
		reportIDs[i] = recs[i].ID
	}

	var links []reportAnswerRecord
	if err := r.db.WithContext(ctx).
		Where("report_id IN ?", reportIDs).
		Order("report_id, answer_id").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("list report answers: %w", err)
	}

	members := make(map[int64][]int64, len(recs))
	for _, l := range links {
		members[l.ReportID] = append(members[l.ReportID], l.AnswerID)
	}

	out := make([]*domain.Report, len(recs))
	for i := range recs {
		out[i] = recs[i].toDomain(members[recs[i].ID])
	}
	return out, nil
}

// AddAnswer inserts the (report, answer) pair. A pair that already exists is
// left alone and reported with added=false.
func (r *ReportRepository) AddAnswer(ctx context.Context, reportID, answerID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&reportAnswerRecord{ReportID: reportID, AnswerID: answerID})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return false, fmt.Errorf("%w: %w", domain.ErrInvalidReference, res.Error)
		}
		return false, fmt.Errorf("add report answer: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *ReportRepository) Answers(ctx context.Context, reportID int64) ([]*domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var recs []answerRecord
	if err := r.db.WithContext(ctx).
		Model(&answerRecord{}).
		Select("answers.*").
		Joins("JOIN report_answers ON report_answers.answer_id = answers.id").
		Where("report_answers.report_id = ?", reportID).
		Order("answers.id").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("load report answers: %w", err)
	}
	return answersToDomain(recs), nil
}

// Delete removes the report and its answer links. Answers are kept.
func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&reportRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete report: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}
