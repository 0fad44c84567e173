package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

func TestResolveError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrEmailRequired, http.StatusBadRequest},
		{fmt.Errorf("%w: duplicate", domain.ErrUserExists), http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{fmt.Errorf("create answer: %w", domain.ErrQuestionNotFound), http.StatusNotFound},
		{domain.ErrAnswerNotFound, http.StatusNotFound},
		{domain.ErrReportNotFound, http.StatusNotFound},
		{domain.ErrInvalidReference, http.StatusUnprocessableEntity},
		{echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		code, msg := resolveError(tc.err, zerolog.Nop(), c)
		if code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if code == http.StatusInternalServerError && msg != "internal server error" {
			t.Errorf("internal error leaked: %q", msg)
		}
	}
}
