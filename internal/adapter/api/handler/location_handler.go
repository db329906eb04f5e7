package handler

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/usecase"
	"foreign/pkg/response"
	"foreign/pkg/utils"
)

type LocationHandler struct {
	locationUseCase *usecase.LocationUseCase
	feedUseCase     *usecase.FeedUseCase
	profileUseCase  *usecase.ProfileUseCase
}

func NewLocationHandler(
	locationUseCase *usecase.LocationUseCase,
	feedUseCase *usecase.FeedUseCase,
	profileUseCase *usecase.ProfileUseCase,
) *LocationHandler {
	return &LocationHandler{
		locationUseCase: locationUseCase,
		feedUseCase:     feedUseCase,
		profileUseCase:  profileUseCase,
	}
}

type createLocationRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Lat         float64  `json:"lat" validate:"required,min=-90,max=90"`
	Lng         float64  `json:"lng" validate:"required,min=-180,max=180"`
	Types       []string `json:"types"`
	ImageURLs   []string `json:"image_urls" validate:"omitempty,dive,url"`
}

type rateLocationRequest struct {
	Rating float64 `json:"rating" validate:"required,min=1,max=5"`
}

// ListLocations returns the map pins visible to the viewer: their own plus
// their friends'.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	uid := c.Get("uid").(string)

	viewer, err := h.profileUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetListParams(c, "createdAt")

	locations, err := h.feedUseCase.ListLocations(c.Request().Context(), viewer, usecase.FeedQuery{
		OrderBy:    params.OrderBy,
		Descending: params.Descending,
		Search:     params.Search,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, locations)
}

func (h *LocationHandler) CreateLocation(c echo.Context) error {
	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	location, err := h.locationUseCase.CreateLocation(c.Request().Context(), uid, usecase.CreateLocationInput{
		Title:       req.Title,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Types:       req.Types,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, location)
}

func (h *LocationHandler) RateLocation(c echo.Context) error {
	var req rateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	location, err := h.locationUseCase.Rate(c.Request().Context(), uid, c.Param("id"), req.Rating)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"id":     location.ID,
		"rating": location.AverageRating(),
	})
}

func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.locationUseCase.DeleteLocation(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}
