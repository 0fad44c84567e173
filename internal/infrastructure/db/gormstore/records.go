package gormstore

import (
	"time"

	"gorm.io/datatypes"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

type userRecord struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string     `gorm:"column:email;size:255;not null;uniqueIndex:uq_users_email"`
	Name         string     `gorm:"column:name;size:255;not null"`
	PasswordHash string     `gorm:"column:password_hash;size:128;not null"`
	IsActive     bool       `gorm:"column:is_active;not null"`
	IsStaff      bool       `gorm:"column:is_staff;not null"`
	IsSuperuser  bool       `gorm:"column:is_superuser;not null"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;not null"`
}

func (userRecord) TableName() string { return "users" }

func toUserRecord(u *domain.User) *userRecord {
	return &userRecord{
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

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		IsActive:     r.IsActive,
		IsStaff:      r.IsStaff,
		IsSuperuser:  r.IsSuperuser,
		LastLogin:    r.LastLogin,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

type questionRecord struct {
	ID              int64                       `gorm:"column:id;primaryKey;autoIncrement"`
	Text            string                      `gorm:"column:text;type:text;not null"`
	PossibleAnswers datatypes.JSONSlice[string] `gorm:"column:possible_answers;not null"`
	CreatedAt       time.Time                   `gorm:"column:created_at;not null"`
}

func (questionRecord) TableName() string { return "questions" }

func (r *questionRecord) toDomain() *domain.Question {
	choices := []string(r.PossibleAnswers)
	if choices == nil {
		choices = []string{}
	}
	return &domain.Question{
		ID:              r.ID,
		Text:            r.Text,
		PossibleAnswers: choices,
		CreatedAt:       r.CreatedAt.UTC(),
	}
}

type answerRecord struct {
	ID         int64          `gorm:"column:id;primaryKey;autoIncrement"`
	UserID     int64          `gorm:"column:user_id;not null;index:idx_answers_user_id"`
	User       userRecord     `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	QuestionID int64          `gorm:"column:question_id;not null;index:idx_answers_question_id"`
	Question   questionRecord `gorm:"foreignKey:QuestionID;references:ID;constraint:OnDelete:CASCADE"`
	Value      int            `gorm:"column:value;not null"`
	CreatedAt  time.Time      `gorm:"column:created_at;not null"`
}

func (answerRecord) TableName() string { return "answers" }

func (r *answerRecord) toDomain() *domain.Answer {
	return &domain.Answer{
		ID:         r.ID,
		UserID:     r.UserID,
		QuestionID: r.QuestionID,
		Value:      r.Value,
		CreatedAt:  r.CreatedAt.UTC(),
	}
}

type reportRecord struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64      `gorm:"column:user_id;not null;index:idx_reports_user_id"`
	User      userRecord `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"column:created_at;not null"`
}

func (reportRecord) TableName() string { return "reports" }

func (r *reportRecord) toDomain(answerIDs []int64) *domain.Report {
	if answerIDs == nil {
		answerIDs = []int64{}
	}
	return &domain.Report{
		ID:        r.ID,
		UserID:    r.UserID,
		AnswerIDs: answerIDs,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

// reportAnswerRecord is the report ↔ answer join table. The composite primary
// key gives the relation set semantics.
type reportAnswerRecord struct {
	ReportID int64        `gorm:"column:report_id;primaryKey;autoIncrement:false"`
	Report   reportRecord `gorm:"foreignKey:ReportID;references:ID;constraint:OnDelete:CASCADE"`
	AnswerID int64        `gorm:"column:answer_id;primaryKey;autoIncrement:false;index:idx_report_answers_answer_id"`
	Answer   answerRecord `gorm:"foreignKey:AnswerID;references:ID;constraint:OnDelete:CASCADE"`
}

func (reportAnswerRecord) TableName() string { return "report_answers" }
