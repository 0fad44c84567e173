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

type AnswerRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{db: db, col: db.Collection(collectionAnswers)}
}

// Create checks that the referenced user and question exist before
// inserting.
func (r *AnswerRepository) Create(ctx context.Context, a *domain.Answer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if ok, err := exists(ctx, r.db.Collection(collectionUsers), a.UserID); err != nil {
		return fmt.Errorf("check user: %w", err)
	} else if !ok {
		return fmt.Errorf("%w: user %d", domain.ErrInvalidReference, a.UserID)
	}
	if ok, err := exists(ctx, r.db.Collection(collectionQuestions), a.QuestionID); err != nil {
		return fmt.Errorf("check question: %w", err)
	} else if !ok {
		return fmt.Errorf("%w: question %d", domain.ErrInvalidReference, a.QuestionID)
	}

	id, err := nextID(ctx, r.db, collectionAnswers)
	if err != nil {
		return err
	}

	doc := answerDoc{ID: id, UserID: a.UserID, QuestionID: a.QuestionID, Value: a.Value, CreatedAt: a.CreatedAt}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	a.ID = id
	return nil
}

func (r *AnswerRepository) FindByID(ctx context.Context, id int64) (*domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc answerDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnswerNotFound
		}
		return nil, fmt.Errorf("find answer: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AnswerRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAnswers(ctx, r.col, bson.M{"user_id": userID})
}

func (r *AnswerRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := exists(ctx, r.col, id)
	if err != nil {
		return fmt.Errorf("check answer: %w", err)
	}
	if !ok {
		return domain.ErrAnswerNotFound
	}
	return removeAnswers(ctx, r.db, bson.M{"_id": id})
}

func findAnswers(ctx context.Context, col *mongo.Collection, filter bson.M) ([]*domain.Answer, error) {
	cur, err := col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	var docs []answerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}

	out := make([]*domain.Answer, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}
