package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pravoline/legal-site-api/internal/api/metrics"
	"github.com/pravoline/legal-site-api/internal/core/ports"
)

// maxUploadBytes caps a single uploaded file (photos and icons only).
const maxUploadBytes = 10 << 20

// UploadHandler stores admin-uploaded images and returns their URL.
type UploadHandler struct {
	store ports.FileStore
}

func NewUploadHandler(store ports.FileStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload handles POST /upload (admin only), multipart field "file".
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fh.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "file too large")
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes))
	if err != nil {
		return err
	}

	url, err := h.store.Save(fh.Filename, data)
	if err != nil {
		return err
	}

	metrics.UploadsTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
