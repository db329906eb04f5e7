package handler

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/usecase"
	"foreign/pkg/response"
	"foreign/pkg/utils"
)

type ForumHandler struct {
	forumUseCase *usecase.ForumUseCase
}

func NewForumHandler(forumUseCase *usecase.ForumUseCase) *ForumHandler {
	return &ForumHandler{
		forumUseCase: forumUseCase,
	}
}

type createQuestionRequest struct {
	Title string `json:"title" validate:"required,min=5,max=300"`
}

type addAnswerRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

type addForumCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

func (h *ForumHandler) ListQuestions(c echo.Context) error {
	params := utils.GetListParams(c, "timestamp")

	questions, err := h.forumUseCase.ListQuestions(c.Request().Context(), params.OrderBy, params.Descending, params.Search)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, questions)
}

func (h *ForumHandler) CreateQuestion(c echo.Context) error {
	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	question, err := h.forumUseCase.CreateQuestion(c.Request().Context(), uid, req.Title)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, question)
}

func (h *ForumHandler) GetQuestion(c echo.Context) error {
	question, err := h.forumUseCase.GetQuestion(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, question)
}

func (h *ForumHandler) DeleteQuestion(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.forumUseCase.DeleteQuestion(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ForumHandler) ListAnswers(c echo.Context) error {
	answers, err := h.forumUseCase.ListAnswers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, answers)
}

func (h *ForumHandler) AddAnswer(c echo.Context) error {
	var req addAnswerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	answer, err := h.forumUseCase.AddAnswer(c.Request().Context(), uid, c.Param("id"), req.Content)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, answer)
}

func (h *ForumHandler) LikeAnswer(c echo.Context) error {
	if err := h.forumUseCase.LikeAnswer(c.Request().Context(), c.Param("id"), c.Param("answerId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "liked"})
}

func (h *ForumHandler) ListAnswerComments(c echo.Context) error {
	comments, err := h.forumUseCase.ListAnswerComments(c.Request().Context(), c.Param("id"), c.Param("answerId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

func (h *ForumHandler) AddAnswerComment(c echo.Context) error {
	var req addForumCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	comment, err := h.forumUseCase.AddAnswerComment(c.Request().Context(), uid, c.Param("id"), c.Param("answerId"), req.Content)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, comment)
}
