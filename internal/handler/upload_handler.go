package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vinolog/internal/errors"
	"vinolog/internal/service"
)

// UploadHandler handles image gallery endpoints.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadURLResponse represents a presigned download URL for an upload.
type UploadURLResponse struct {
	UploadID uint   `json:"upload_id"`
	URL      string `json:"url"`
}

// UploadImage godoc
// @Summary Upload a wine image
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Param wine_id formData int false "Wine to attach the image to"
// @Success 201 {object} model.Upload
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /uploads [post]
func (h *UploadHandler) UploadImage(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "file is required",
			Code:  "FILE_REQUIRED",
		})
	}

	var wineID *uint
	if raw := c.FormValue("wine_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid wine_id parameter",
				Code:  "INVALID_ID",
			})
		}
		id := uint(parsed)
		wineID = &id
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	upload, err := h.uploadService.UploadImage(
		c.Request().Context(),
		claims.UserID,
		wineID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		src,
		fileHeader.Size,
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, upload)
}

// ListUploads godoc
// @Summary List the caller's uploads
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Upload
// @Failure 401 {object} errors.ErrorResponse
// @Router /uploads [get]
func (h *UploadHandler) ListUploads(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	uploads, err := h.uploadService.ListUploads(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, uploads)
}

// GetUploadURL godoc
// @Summary Get a short-lived download URL for an upload
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Upload ID"
// @Success 200 {object} UploadURLResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /uploads/{id}/url [get]
func (h *UploadHandler) GetUploadURL(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	uploadID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	url, err := h.uploadService.GetUploadURL(c.Request().Context(), claims.UserID, uploadID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UploadURLResponse{
		UploadID: uploadID,
		URL:      url,
	})
}

// DeleteUpload godoc
// @Summary Delete one of the caller's uploads
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Upload ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /uploads/{id} [delete]
func (h *UploadHandler) DeleteUpload(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	uploadID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uploadService.DeleteUpload(c.Request().Context(), claims.UserID, uploadID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "upload deleted successfully",
	})
}
