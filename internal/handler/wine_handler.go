package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"vinolog/internal/errors"
	"vinolog/internal/service"
)

// WineHandler handles wine catalog endpoints.
type WineHandler struct {
	wineService service.WineService
}

// NewWineHandler creates a new wine handler.
func NewWineHandler(wineService service.WineService) *WineHandler {
	return &WineHandler{wineService: wineService}
}

// WineRequest represents the attributes of a wine. Name is the only required
// field.
type WineRequest struct {
	Name     string           `json:"name" validate:"required"`
	Year     *int             `json:"year,omitempty"`
	Type     string           `json:"type,omitempty"`
	Region   string           `json:"region,omitempty"`
	Alcohol  *float64         `json:"alcohol,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Producer string           `json:"producer,omitempty"`
}

func (r *WineRequest) toInput() service.WineInput {
	return service.WineInput{
		Name:     r.Name,
		Year:     r.Year,
		Type:     r.Type,
		Region:   r.Region,
		Alcohol:  r.Alcohol,
		Price:    r.Price,
		Producer: r.Producer,
	}
}

// ListWines godoc
// @Summary List the caller's wines
// @Tags wines
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Wine
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /wines [get]
func (h *WineHandler) ListWines(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	wines, err := h.wineService.ListWines(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, wines)
}

// GetWine godoc
// @Summary Get one of the caller's wines
// @Tags wines
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wine ID"
// @Success 200 {object} model.Wine
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /wines/{id} [get]
func (h *WineHandler) GetWine(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	wineID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	wine, err := h.wineService.GetWine(c.Request().Context(), claims.UserID, wineID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, wine)
}

// CreateWine godoc
// @Summary Add a wine to the caller's catalog
// @Tags wines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body WineRequest true "Wine attributes"
// @Success 201 {object} model.Wine
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /wines [post]
func (h *WineHandler) CreateWine(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	var req WineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	wine, err := h.wineService.AddWine(c.Request().Context(), claims.UserID, req.toInput())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, wine)
}

// UpdateWine godoc
// @Summary Edit one of the caller's wines
// @Tags wines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wine ID"
// @Param request body WineRequest true "Wine attributes"
// @Success 200 {object} model.Wine
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /wines/{id} [put]
func (h *WineHandler) UpdateWine(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	wineID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req WineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	wine, err := h.wineService.UpdateWine(c.Request().Context(), claims.UserID, wineID, req.toInput())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, wine)
}

// DeleteWine godoc
// @Summary Delete one of the caller's wines and its tastings
// @Tags wines
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wine ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /wines/{id} [delete]
func (h *WineHandler) DeleteWine(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	wineID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.wineService.DeleteWine(c.Request().Context(), claims.UserID, wineID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "wine deleted successfully",
	})
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name + " parameter",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
