package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foreign/internal/infrastructure/ratelimit"
	"foreign/internal/usecase"
	"foreign/pkg/errors"
	"foreign/pkg/response"
)

var fileHandler *FileHandler

type FileHandler struct {
	uploader    usecase.FileUploader
	limiter     *ratelimit.RateLimiter
	maxUploadMB int64
}

func SetupFileHandler(uploader usecase.FileUploader, limiter *ratelimit.RateLimiter, maxUploadMB int64) {
	fileHandler = &FileHandler{
		uploader:    uploader,
		limiter:     limiter,
		maxUploadMB: maxUploadMB,
	}
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// UploadImage accepts a multipart image and returns its download URL. The
// folder query param picks the destination (posts, profiles, locations).
func (h *FileHandler) UploadImage(c echo.Context) error {
	uid := c.Get("uid").(string)

	if allowed, wait := h.limiter.Allow(uid, "upload"); !allowed {
		return echo.NewHTTPError(http.StatusTooManyRequests,
			"Upload limit reached, retry in "+wait.String())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing file field", err))
	}

	if fileHeader.Size > h.maxUploadMB*1024*1024 {
		return response.Error(c, errors.BadRequest("File too large", nil))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return response.Error(c, errors.BadRequest("Unsupported image type", nil))
	}

	folder := c.QueryParam("folder")
	switch folder {
	case "posts", "profiles", "locations":
	default:
		folder = "uploads"
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read upload", err))
	}
	defer file.Close()

	url, err := h.uploader.UploadFile(c.Request().Context(), file, contentType, folder)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to store upload", err))
	}

	return response.Created(c, map[string]string{"url": url})
}
