package domain

import (
	"strconv"
	"time"
)

// Answer is one user's response to one question. Value is meant to be an
// index into the question's PossibleAnswers; nothing enforces that.
type Answer struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	QuestionID int64     `json:"question_id"`
	Value      int       `json:"value"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *Answer) String() string {
	return strconv.Itoa(a.Value)
}
