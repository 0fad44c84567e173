package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

type ReportRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{db: db, col: db.Collection(collectionReports)}
}

func (r *ReportRepository) Create(ctx context.Context, rep *domain.Report) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if ok, err := exists(ctx, r.db.Collection(collectionUsers), rep.UserID); err != nil {
		return fmt.Errorf("check user: %w", err)
	} else if !ok {
		return fmt.Errorf("%w: user %d", domain.ErrInvalidReference, rep.UserID)
	}

	id, err := nextID(ctx, r.db, collectionReports)
	if err != nil {
		return err
	}

	doc := reportDoc{ID: id, UserID: rep.UserID, AnswerIDs: []int64{}, CreatedAt: rep.CreatedAt}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	rep.ID = id
	rep.AnswerIDs = []int64{}
	return nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id int64) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ReportRepository) find(ctx context.Context, id int64) (*reportDoc, error) {
	var doc reportDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report: %w", err)
	}
	return &doc, nil
}

func (r *ReportRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	var docs []reportDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}

	out := make([]*domain.Report, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

// AddAnswer relies on $addToSet for set semantics: a member already present
// leaves the document unmodified and added is false.
func (r *ReportRepository) AddAnswer(ctx context.Context, reportID, answerID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if ok, err := exists(ctx, r.db.Collection(collectionAnswers), answerID); err != nil {
		return false, fmt.Errorf("check answer: %w", err)
	} else if !ok {
		return false, fmt.Errorf("%w: answer %d", domain.ErrInvalidReference, answerID)
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": reportID},
		bson.M{"$addToSet": bson.M{"answer_ids": answerID}},
	)
	if err != nil {
		return false, fmt.Errorf("add report answer: %w", err)
	}
	if res.MatchedCount == 0 {
		return false, fmt.Errorf("%w: report %d", domain.ErrInvalidReference, reportID)
	}
	return res.ModifiedCount > 0, nil
}

func (r *ReportRepository) Answers(ctx context.Context, reportID int64) ([]*domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := r.find(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if len(doc.AnswerIDs) == 0 {
		return []*domain.Answer{}, nil
	}
	return findAnswers(ctx, r.db.Collection(collectionAnswers), bson.M{"_id": bson.M{"$in": doc.AnswerIDs}})
}

func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}
