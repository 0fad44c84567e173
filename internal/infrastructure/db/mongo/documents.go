package mongo

import (
	"slices"
	"time"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

type userDoc struct {
	ID           int64      `bson:"_id"`
	Email        string     `bson:"email"`
	Name         string     `bson:"name"`
	PasswordHash string     `bson:"password_hash"`
	IsActive     bool       `bson:"is_active"`
	IsStaff      bool       `bson:"is_staff"`
	IsSuperuser  bool       `bson:"is_superuser"`
	LastLogin    *time.Time `bson:"last_login,omitempty"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		IsStaff:      u.IsStaff,
		IsSuperuser:  u.IsSuperuser,
		LastLogin:    u.LastLogin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDoc) toDomain() *domain.User {
	u := &domain.User{
		ID:           d.ID,
		Email:        d.Email,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		IsActive:     d.IsActive,
		IsStaff:      d.IsStaff,
		IsSuperuser:  d.IsSuperuser,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
	if d.LastLogin != nil {
		t := d.LastLogin.UTC()
		u.LastLogin = &t
	}
	return u
}

type questionDoc struct {
	ID              int64     `bson:"_id"`
	Text            string    `bson:"text"`
	PossibleAnswers []string  `bson:"possible_answers"`
	CreatedAt       time.Time `bson:"created_at"`
}

func (d questionDoc) toDomain() *domain.Question {
	choices := d.PossibleAnswers
	if choices == nil {
		choices = []string{}
	}
	return &domain.Question{
		ID:              d.ID,
		Text:            d.Text,
		PossibleAnswers: choices,
		CreatedAt:       d.CreatedAt.UTC(),
	}
}

type answerDoc struct {
	ID         int64     `bson:"_id"`
	UserID     int64     `bson:"user_id"`
	QuestionID int64     `bson:"question_id"`
	Value      int       `bson:"value"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (d answerDoc) toDomain() *domain.Answer {
	return &domain.Answer{
		ID:         d.ID,
		UserID:     d.UserID,
		QuestionID: d.QuestionID,
		Value:      d.Value,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

type reportDoc struct {
	ID        int64     `bson:"_id"`
	UserID    int64     `bson:"user_id"`
	AnswerIDs []int64   `bson:"answer_ids"`
	CreatedAt time.Time `bson:"created_at"`
}

// toDomain returns the answer set sorted so both backends agree on order.
func (d reportDoc) toDomain() *domain.Report {
	ids := slices.Clone(d.AnswerIDs)
	if ids == nil {
		ids = []int64{}
	}
	slices.Sort(ids)
	return &domain.Report{
		ID:        d.ID,
		UserID:    d.UserID,
		AnswerIDs: ids,
		CreatedAt: d.CreatedAt.UTC(),
	}
}
