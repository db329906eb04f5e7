package handler

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/usecase"
	"foreign/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
	session        *usecase.ProfileSession
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase, session *usecase.ProfileSession) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		session:        session,
	}
}

type updateProfileRequest struct {
	Name       string   `json:"name" validate:"omitempty,min=2,max=80"`
	University string   `json:"university" validate:"omitempty,max=120"`
	Origin     string   `json:"origin" validate:"omitempty,max=120"`
	Photo      string   `json:"photo" validate:"omitempty,url"`
	Interests  []string `json:"interests"`
	Areas      []string `json:"areas"`
	IsMentor   *bool    `json:"is_mentor"`
}

// Me ensures the profile exists (first sign-in creates it) and pins it into
// the session.
func (h *ProfileHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.profileUseCase.EnsureProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	if _, err := h.session.Load(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.profileUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Name:       req.Name,
		University: req.University,
		Origin:     req.Origin,
		Photo:      req.Photo,
		Interests:  req.Interests,
		Areas:      req.Areas,
		IsMentor:   req.IsMentor,
	})
	if err != nil {
		return response.Error(c, err)
	}

	// Profile edits go through the session's refresh so every reader sees
	// the new denormalization source.
	if _, err := h.session.Refresh(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *ProfileHandler) Refresh(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.session.Refresh(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *ProfileHandler) SetNotifications(c echo.Context) error {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.profileUseCase.SetNotificationsEnabled(c.Request().Context(), uid, req.Enabled)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *ProfileHandler) GetUser(c echo.Context) error {
	user, err := h.profileUseCase.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"id":         user.ID,
		"name":       user.Name,
		"photo":      user.Photo,
		"university": user.University,
		"origin":     user.Origin,
		"interests":  user.Interests,
		"is_mentor":  user.IsMentor,
		"areas":      user.Areas,
	})
}

func (h *ProfileHandler) ListMentors(c echo.Context) error {
	uid := c.Get("uid").(string)

	viewer, err := h.profileUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	mentors, err := h.profileUseCase.ListMentors(c.Request().Context(), viewer)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, mentors)
}

func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.profileUseCase.DeleteAccount(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	h.session.Clear(uid)
	return response.Success(c, map[string]string{"status": "deleted"})
}
