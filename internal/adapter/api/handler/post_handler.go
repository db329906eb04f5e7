package handler

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/usecase"
	"foreign/pkg/response"
	"foreign/pkg/utils"
)

type PostHandler struct {
	postUseCase    *usecase.PostUseCase
	feedUseCase    *usecase.FeedUseCase
	profileUseCase *usecase.ProfileUseCase
}

func NewPostHandler(
	postUseCase *usecase.PostUseCase,
	feedUseCase *usecase.FeedUseCase,
	profileUseCase *usecase.ProfileUseCase,
) *PostHandler {
	return &PostHandler{
		postUseCase:    postUseCase,
		feedUseCase:    feedUseCase,
		profileUseCase: profileUseCase,
	}
}

type createPostRequest struct {
	Image    string `json:"image" validate:"required,url"`
	Caption  string `json:"caption" validate:"max=2000"`
	Location string `json:"location" validate:"omitempty,max=200"`
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

// ListPosts serves the feed. Query params: visibility (public|university|
// friends), include_self (friends feed only), order_by, direction, search.
func (h *PostHandler) ListPosts(c echo.Context) error {
	uid := c.Get("uid").(string)

	viewer, err := h.profileUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetListParams(c, "createdAt")

	query := usecase.FeedQuery{
		OrderBy:     params.OrderBy,
		Descending:  params.Descending,
		Search:      params.Search,
		Visibility:  usecase.Visibility(c.QueryParam("visibility")),
		IncludeSelf: c.QueryParam("include_self") == "true",
	}
	if query.Visibility == "" {
		query.Visibility = usecase.VisibilityPublic
	}

	posts, err := h.feedUseCase.ListPosts(c.Request().Context(), viewer, query)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, posts)
}

func (h *PostHandler) CreatePost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	post, err := h.postUseCase.CreatePost(c.Request().Context(), uid, usecase.CreatePostInput{
		Image:    req.Image,
		Caption:  req.Caption,
		Location: req.Location,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, post)
}

func (h *PostHandler) ToggleLike(c echo.Context) error {
	uid := c.Get("uid").(string)

	post, err := h.postUseCase.ToggleLike(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"id":         post.ID,
		"liked":      post.LikedBy(uid),
		"like_count": post.LikeCount(),
	})
}

func (h *PostHandler) ListComments(c echo.Context) error {
	comments, err := h.postUseCase.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

func (h *PostHandler) AddComment(c echo.Context) error {
	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	comment, err := h.postUseCase.AddComment(c.Request().Context(), uid, c.Param("id"), req.Text)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, comment)
}

func (h *PostHandler) DeletePost(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.postUseCase.DeletePost(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *PostHandler) DeleteComment(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.postUseCase.DeleteComment(c.Request().Context(), uid, c.Param("id"), c.Param("commentId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}
