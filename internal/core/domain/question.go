package domain

import "time"

// Question is a survey prompt with an ordered list of answer labels.
type Question struct {
	ID              int64     `json:"id"`
	Text            string    `json:"text"`
	PossibleAnswers []string  `json:"possible_answers"`
	CreatedAt       time.Time `json:"created_at"`
}

func (q *Question) String() string {
	return q.Text
}

// HasChoice reports whether value indexes into PossibleAnswers.
func (q *Question) HasChoice(value int) bool {
	return value >= 0 && value < len(q.PossibleAnswers)
}
