package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/surveykit/questionnaire/internal/core/domain"
	"github.com/surveykit/questionnaire/internal/core/ports"
)

type stubUserService struct {
	createUserFn      func(ctx context.Context, email, password string, extra ports.UserFields) (*domain.User, error)
	createSuperuserFn func(ctx context.Context, email, password string) (*domain.User, error)
	loginFn           func(ctx context.Context, email, password string) (string, *domain.User, error)
	getFn             func(ctx context.Context, id int64) (*domain.User, error)
	deleteFn          func(ctx context.Context, id int64) error
}

func (s *stubUserService) CreateUser(ctx context.Context, email, password string, extra ports.UserFields) (*domain.User, error) {
	return s.createUserFn(ctx, email, password, extra)
}

func (s *stubUserService) CreateSuperuser(ctx context.Context, email, password string) (*domain.User, error) {
	return s.createSuperuserFn(ctx, email, password)
}

func (s *stubUserService) CheckPassword(*domain.User, string) bool { return false }

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubQuestionService struct {
	createFn func(ctx context.Context, text string, choices []string) (*domain.Question, error)
	getFn    func(ctx context.Context, id int64) (*domain.Question, error)
	listFn   func(ctx context.Context) ([]*domain.Question, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubQuestionService) Create(ctx context.Context, text string, choices []string) (*domain.Question, error) {
	return s.createFn(ctx, text, choices)
}

func (s *stubQuestionService) Get(ctx context.Context, id int64) (*domain.Question, error) {
	return s.getFn(ctx, id)
}

func (s *stubQuestionService) List(ctx context.Context) ([]*domain.Question, error) {
	return s.listFn(ctx)
}

func (s *stubQuestionService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubAnswerService struct {
	createFn func(ctx context.Context, userID, questionID int64, value int) (*domain.Answer, error)
	getFn    func(ctx context.Context, id int64) (*domain.Answer, error)
	listFn   func(ctx context.Context, userID int64) ([]*domain.Answer, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubAnswerService) Create(ctx context.Context, userID, questionID int64, value int) (*domain.Answer, error) {
	return s.createFn(ctx, userID, questionID, value)
}

func (s *stubAnswerService) Get(ctx context.Context, id int64) (*domain.Answer, error) {
	return s.getFn(ctx, id)
}

func (s *stubAnswerService) ListByUser(ctx context.Context, userID int64) ([]*domain.Answer, error) {
	return s.listFn(ctx, userID)
}

func (s *stubAnswerService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubReportService struct {
	createFn    func(ctx context.Context, userID int64) (*domain.Report, error)
	getFn       func(ctx context.Context, id int64) (*ports.ReportDetail, error)
	listFn      func(ctx context.Context, userID int64) ([]*domain.Report, error)
	addAnswerFn func(ctx context.Context, reportID, answerID int64) (*domain.Report, error)
	deleteFn    func(ctx context.Context, id int64) error
}

func (s *stubReportService) Create(ctx context.Context, userID int64) (*domain.Report, error) {
	return s.createFn(ctx, userID)
}

func (s *stubReportService) Get(ctx context.Context, id int64) (*ports.ReportDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubReportService) ListByUser(ctx context.Context, userID int64) ([]*domain.Report, error) {
	return s.listFn(ctx, userID)
}

func (s *stubReportService) AddAnswer(ctx context.Context, reportID, answerID int64) (*domain.Report, error) {
	return s.addAnswerFn(ctx, reportID, answerID)
}

func (s *stubReportService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

// newContext builds an echo context with the validator registered. A non-zero
// userID simulates the Auth middleware.
func newContext(method, target, body string, userID int64, role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user_id", userID)
		c.Set("role", role)
	}
	return c, rec
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError with %d, got %v", code, err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d (%v)", code, he.Code, he.Message)
	}
}
