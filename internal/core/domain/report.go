package domain

import (
	"fmt"
	"time"
)

// Report aggregates a user's answers. AnswerIDs is a set: order is not
// meaningful and an id appears at most once.
type Report struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	AnswerIDs []int64   `json:"answer_ids"`
	CreatedAt time.Time `json:"created_at"`
}

// HasAnswer reports whether the answer is a member of the report.
func (r *Report) HasAnswer(answerID int64) bool {
	for _, id := range r.AnswerIDs {
		if id == answerID {
			return true
		}
	}
	return false
}

// Label renders the report for its owner, e.g. "Report for a@example.com".
func (r *Report) Label(owner *User) string {
	return fmt.Sprintf("Report for %s", owner.Email)
}
