package handler

import "github.com/surveykit/questionnaire/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"max=255"`
	Password string `json:"password" validate:"max=128"`
	Name     string `json:"name"     validate:"max=255"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type superuserRequest struct {
	Email    string `json:"email"    validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type createQuestionRequest struct {
	Text            string   `json:"text"             validate:"required"`
	PossibleAnswers []string `json:"possible_answers" validate:"dive,required,max=255"`
}

type createAnswerRequest struct {
	QuestionID int64 `json:"question_id" validate:"required,gt=0"`
	Value      int   `json:"value"`
}

type addAnswerRequest struct {
	AnswerID int64 `json:"answer_id" validate:"required,gt=0"`
}

type reportDetailResponse struct {
	*domain.Report
	Answers []*domain.Answer `json:"answers"`
}
