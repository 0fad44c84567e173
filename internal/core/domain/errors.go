package domain

import "errors"

// ErrEmailRequired is the only validation failure raised by the user factory.
var ErrEmailRequired = errors.New("users must have an email address")

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrAnswerNotFound     = errors.New("answer not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrForbidden          = errors.New("access forbidden")
)

// ErrInvalidReference is returned when a write points at a row that does not
// exist (foreign key violation).
var ErrInvalidReference = errors.New("referenced record does not exist")
