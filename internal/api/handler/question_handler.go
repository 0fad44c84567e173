package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/surveykit/questionnaire/internal/core/ports"
)

type QuestionHandler struct {
	questions ports.QuestionService
}

func NewQuestionHandler(questions ports.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// Create handles POST /v1/questions.
//
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createQuestionRequest  true  "Question"
// @Success      201   {object}  domain.Question
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/questions [post]
func (h *QuestionHandler) Create(c echo.Context) error {
	var req createQuestionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	q, err := h.questions.Create(c.Request().Context(), req.Text, req.PossibleAnswers)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, q)
}

// List handles GET /v1/questions.
//
// @Summary      List questions
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Question
// @Failure      401  {object}  errorResponse
// @Router       /v1/questions [get]
func (h *QuestionHandler) List(c echo.Context) error {
	qs, err := h.questions.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, qs)
}

// Get handles GET /v1/questions/:id.
//
// @Summary      Get a question
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Question ID"
// @Success      200  {object}  domain.Question
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/questions/{id} [get]
func (h *QuestionHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	q, err := h.questions.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, q)
}

// Delete handles DELETE /v1/questions/:id. Answers to the question are
// removed with it.
//
// @Summary      Delete a question
// @Tags         questions
// @Security     BearerAuth
// @Param        id  path  int  true  "Question ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/questions/{id} [delete]
func (h *QuestionHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.questions.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
