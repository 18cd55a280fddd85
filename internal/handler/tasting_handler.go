package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"vinolog/internal/errors"
	"vinolog/internal/model"
	"vinolog/internal/service"
)

const dateLayout = "2006-01-02"

// TastingHandler handles tasting diary endpoints.
type TastingHandler struct {
	tastingService service.TastingService
}

// NewTastingHandler creates a new tasting handler.
func NewTastingHandler(tastingService service.TastingService) *TastingHandler {
	return &TastingHandler{tastingService: tastingService}
}

// VisualAnalysisRequest carries the visual analysis fields. Every field is an
// enumerated token or empty for unset.
type VisualAnalysisRequest struct {
	Color             string `json:"color,omitempty"`
	ColorDensity      string `json:"color_density,omitempty"`
	Clarity           string `json:"clarity,omitempty"`
	Consistency       string `json:"consistency,omitempty"`
	BubbleSize        string `json:"bubble_size,omitempty"`
	BubbleNumber      string `json:"bubble_number,omitempty"`
	BubblePersistence string `json:"bubble_persistence,omitempty"`
}

func (r *VisualAnalysisRequest) toModel() model.VisualAnalysis {
	return model.VisualAnalysis{
		Color:             r.Color,
		ColorDensity:      r.ColorDensity,
		Clarity:           r.Clarity,
		Consistency:       r.Consistency,
		BubbleSize:        r.BubbleSize,
		BubbleNumber:      r.BubbleNumber,
		BubblePersistence: r.BubblePersistence,
	}
}

// OlfactoryAnalysisRequest carries the olfactory analysis fields.
// DominantAromas is free text.
type OlfactoryAnalysisRequest struct {
	Intensity      string `json:"intensity,omitempty"`
	Complexity     string `json:"complexity,omitempty"`
	Quality        string `json:"quality,omitempty"`
	DominantAromas string `json:"dominant_aromas,omitempty"`
}

func (r *OlfactoryAnalysisRequest) toModel() model.OlfactoryAnalysis {
	return model.OlfactoryAnalysis{
		Intensity:      r.Intensity,
		Complexity:     r.Complexity,
		Quality:        r.Quality,
		DominantAromas: r.DominantAromas,
	}
}

// GustatoryAnalysisRequest carries the gustatory analysis fields.
type GustatoryAnalysisRequest struct {
	SugarQty      string `json:"sugar_qty,omitempty"`
	AlcoholQty    string `json:"alcohol_qty,omitempty"`
	AcidityQty    string `json:"acidity_qty,omitempty"`
	TanninQty     string `json:"tannin_qty,omitempty"`
	TanninQuality string `json:"tannin_quality,omitempty"`
	Balance       string `json:"balance,omitempty"`
	Body          string `json:"body,omitempty"`
	Persistence   string `json:"persistence,omitempty"`
	Quality       string `json:"quality,omitempty"`
}

func (r *GustatoryAnalysisRequest) toModel() model.GustatoryAnalysis {
	return model.GustatoryAnalysis{
		SugarQty:      r.SugarQty,
		AlcoholQty:    r.AlcoholQty,
		AcidityQty:    r.AcidityQty,
		TanninQty:     r.TanninQty,
		TanninQuality: r.TanninQuality,
		Balance:       r.Balance,
		Body:          r.Body,
		Persistence:   r.Persistence,
		Quality:       r.Quality,
	}
}

// TastingRequest represents a tasting creation or edit request. The analyses
// are optional; when present on create they are stored together with the
// tasting.
type TastingRequest struct {
	WineID      uint                      `json:"wine_id" validate:"required"`
	TastingDate string                    `json:"tasting_date,omitempty"`
	Location    string                    `json:"location,omitempty"`
	Description string                    `json:"description,omitempty"`
	Visual      *VisualAnalysisRequest    `json:"visual_analysis,omitempty"`
	Olfactory   *OlfactoryAnalysisRequest `json:"olfactory_analysis,omitempty"`
	Gustatory   *GustatoryAnalysisRequest `json:"gustatory_analysis,omitempty"`
}

func (r *TastingRequest) toInput() (service.TastingInput, error) {
	input := service.TastingInput{
		WineID:      r.WineID,
		Location:    r.Location,
		Description: r.Description,
	}
	if r.TastingDate != "" {
		date, err := time.Parse(dateLayout, r.TastingDate)
		if err != nil {
			return input, err
		}
		input.TastingDate = date
	}
	if r.Visual != nil {
		v := r.Visual.toModel()
		input.Visual = &v
	}
	if r.Olfactory != nil {
		o := r.Olfactory.toModel()
		input.Olfactory = &o
	}
	if r.Gustatory != nil {
		g := r.Gustatory.toModel()
		input.Gustatory = &g
	}
	return input, nil
}

// ListTastings godoc
// @Summary List the caller's tastings
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Tasting
// @Failure 401 {object} errors.ErrorResponse
// @Router /tastings [get]
func (h *TastingHandler) ListTastings(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	tastings, err := h.tastingService.ListTastings(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, tastings)
}

// GetTasting godoc
// @Summary Get one of the caller's tastings with its analyses
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tasting ID"
// @Success 200 {object} model.Tasting
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tastings/{id} [get]
func (h *TastingHandler) GetTasting(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	tastingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	tasting, err := h.tastingService.GetTasting(c.Request().Context(), claims.UserID, tastingID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, tasting)
}

// CreateTasting godoc
// @Summary Log a tasting against one of the caller's wines
// @Tags tastings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TastingRequest true "Tasting data"
// @Success 201 {object} model.Tasting
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tastings [post]
func (h *TastingHandler) CreateTasting(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	var req TastingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "tasting_date must be formatted as YYYY-MM-DD",
			Code:  "INVALID_DATE",
		})
	}

	tasting, err := h.tastingService.AddTasting(c.Request().Context(), claims.UserID, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, tasting)
}

// UpdateTasting godoc
// @Summary Edit a tasting's date, location, and description
// @Tags tastings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tasting ID"
// @Param request body TastingRequest true "Tasting data"
// @Success 200 {object} model.Tasting
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tastings/{id} [put]
func (h *TastingHandler) UpdateTasting(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	tastingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req TastingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "tasting_date must be formatted as YYYY-MM-DD",
			Code:  "INVALID_DATE",
		})
	}

	tasting, err := h.tastingService.UpdateTasting(c.Request().Context(), claims.UserID, tastingID, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, tasting)
}

// DeleteTasting godoc
// @Summary Delete a tasting and its analyses
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tasting ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tastings/{id} [delete]
func (h *TastingHandler) DeleteTasting(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	tastingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.tastingService.DeleteTasting(c.Request().Context(), claims.UserID, tastingID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "tasting deleted successfully",
	})
}

// SetVisualAnalysis godoc
// @Summary Set or replace the visual analysis of a tasting
// @Tags tastings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tasting ID"
// @Param request body VisualAnalysisRequest true "Visual analysis"
// @Success 200 {object} model.VisualAnalysis
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tastings/{id}/visual [put]
func (h *TastingHandler) SetVisualAnalysis(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	tastingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req VisualAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	analysis, err := h.tastingService.SetVisualAnalysis(c.Request().Context(), claims.UserID, tastingID, req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, analysis)
}

// SetOlfactoryAnalysis godoc
// @Summary Set or replace the olfactory analysis of a tasting
// @Tags tastings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tasting ID"
// @Param request body OlfactoryAnalysisRequest true "Olfactory analysis"
// @Success 200 {object} model.OlfactoryAnalysis
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tastings/{id}/olfactory [put]
func (h *TastingHandler) SetOlfactoryAnalysis(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	tastingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req OlfactoryAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	analysis, err := h.tastingService.SetOlfactoryAnalysis(c.Request().Context(), claims.UserID, tastingID, req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, analysis)
}

// SetGustatoryAnalysis godoc
// @Summary Set or replace the gustatory analysis of a tasting
// @Tags tastings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tasting ID"
// @Param request body GustatoryAnalysisRequest true "Gustatory analysis"
// @Success 200 {object} model.GustatoryAnalysis
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tastings/{id}/gustatory [put]
func (h *TastingHandler) SetGustatoryAnalysis(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	tastingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req GustatoryAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	analysis, err := h.tastingService.SetGustatoryAnalysis(c.Request().Context(), claims.UserID, tastingID, req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, analysis)
}
