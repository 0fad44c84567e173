package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/surveykit/questionnaire/internal/core/domain"
	"github.com/surveykit/questionnaire/internal/core/ports"
)

type ReportHandler struct {
	reports ports.ReportService
	answers ports.AnswerService
}

func NewReportHandler(reports ports.ReportService, answers ports.AnswerService) *ReportHandler {
	return &ReportHandler{reports: reports, answers: answers}
}

// Create handles POST /v1/reports. The report belongs to the caller.
//
// @Summary      Create a report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Report
// @Failure      401  {object}  errorResponse
// @Router       /v1/reports [post]
func (h *ReportHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	r, err := h.reports.Create(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, r)
}

// List handles GET /v1/reports and returns the caller's reports.
//
// @Summary      List my reports
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Report
// @Failure      401  {object}  errorResponse
// @Router       /v1/reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	reports, err := h.reports.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// Get handles GET /v1/reports/:id and includes the report's answers. Callers
// who are not staff only see their own answers.
//
// @Summary      Get a report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Report ID"
// @Success      200  {object}  reportDetailResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reports/{id} [get]
func (h *ReportHandler) Get(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.reports.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(detail.Report.UserID, userID, role); err != nil {
		return err
	}
	if isStaff(role) {
		return c.JSON(http.StatusOK, reportDetailResponse{Report: detail.Report, Answers: detail.Answers})
	}

	report := *detail.Report
	answers := ownAnswers(detail.Answers, userID)
	report.AnswerIDs = make([]int64, 0, len(answers))
	for _, a := range answers {
		report.AnswerIDs = append(report.AnswerIDs, a.ID)
	}
	return c.JSON(http.StatusOK, reportDetailResponse{Report: &report, Answers: answers})
}

// AddAnswer handles POST /v1/reports/:id/answers. The caller must own both the
// report and the answer unless they are staff. Adding an answer that is
// already in the report leaves it unchanged.
//
// @Summary      Add an answer to a report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Report ID"
// @Param        body  body      addAnswerRequest  true  "Answer reference"
// @Success      200   {object}  domain.Report
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/reports/{id}/answers [post]
func (h *ReportHandler) AddAnswer(c echo.Context) error {
	id, err := h.authorize(c)
	if err != nil {
		return err
	}

	var req addAnswerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID, role, _ := ctxClaims(c)
	a, err := h.answers.Get(c.Request().Context(), req.AnswerID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(a.UserID, userID, role); err != nil {
		return err
	}

	r, err := h.reports.AddAnswer(c.Request().Context(), id, req.AnswerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// Delete handles DELETE /v1/reports/:id. Answers are not deleted.
//
// @Summary      Delete a report
// @Tags         reports
// @Security     BearerAuth
// @Param        id  path  int  true  "Report ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reports/{id} [delete]
func (h *ReportHandler) Delete(c echo.Context) error {
	id, err := h.authorize(c)
	if err != nil {
		return err
	}

	if err := h.reports.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// authorize resolves the :id report and checks the caller may modify it.
func (h *ReportHandler) authorize(c echo.Context) (int64, error) {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return 0, err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return 0, err
	}

	detail, err := h.reports.Get(c.Request().Context(), id)
	if err != nil {
		return 0, err
	}
	if err := authorizeOwner(detail.Report.UserID, userID, role); err != nil {
		return 0, err
	}
	return id, nil
}

func ownAnswers(answers []*domain.Answer, userID int64) []*domain.Answer {
	out := make([]*domain.Answer, 0, len(answers))
	for _, a := range answers {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}
