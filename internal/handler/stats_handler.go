package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vinolog/internal/errors"
	"vinolog/internal/service"
)

// StatsHandler handles the dashboard endpoint.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard godoc
// @Summary Dashboard statistics for the caller
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	stats, err := h.statsService.DashboardStats(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, stats)
}
