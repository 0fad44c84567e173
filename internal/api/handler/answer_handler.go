package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/surveykit/questionnaire/internal/core/domain"
	"github.com/surveykit/questionnaire/internal/core/ports"
)

type AnswerHandler struct {
	answers ports.AnswerService
}

func NewAnswerHandler(answers ports.AnswerService) *AnswerHandler {
	return &AnswerHandler{answers: answers}
}

// Create handles POST /v1/answers. The answer is recorded for the caller.
//
// @Summary      Answer a question
// @Tags         answers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAnswerRequest  true  "Answer"
// @Success      201   {object}  domain.Answer
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/answers [post]
func (h *AnswerHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createAnswerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.answers.Create(c.Request().Context(), userID, req.QuestionID, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

// List handles GET /v1/answers and returns the caller's answers.
//
// @Summary      List my answers
// @Tags         answers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Answer
// @Failure      401  {object}  errorResponse
// @Router       /v1/answers [get]
func (h *AnswerHandler) List(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	answers, err := h.answers.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, answers)
}

// Get handles GET /v1/answers/:id. Only the owner and staff may read it.
//
// @Summary      Get an answer
// @Tags         answers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Answer ID"
// @Success      200  {object}  domain.Answer
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/answers/{id} [get]
func (h *AnswerHandler) Get(c echo.Context) error {
	a, err := h.authorize(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /v1/answers/:id. The answer is also removed from every
// report that contains it.
//
// @Summary      Delete an answer
// @Tags         answers
// @Security     BearerAuth
// @Param        id  path  int  true  "Answer ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/answers/{id} [delete]
func (h *AnswerHandler) Delete(c echo.Context) error {
	a, err := h.authorize(c)
	if err != nil {
		return err
	}

	if err := h.answers.Delete(c.Request().Context(), a.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// authorize loads the :id answer and checks the caller owns it or is staff.
func (h *AnswerHandler) authorize(c echo.Context) (*domain.Answer, error) {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return nil, err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}

	a, err := h.answers.Get(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(a.UserID, userID, role); err != nil {
		return nil, err
	}
	return a, nil
}
