package handlers

import (
	"net/http"
	"time"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated stats endpoint.
type DashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds portssvc.DashboardSvcFacade) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, ds portssvc.DashboardSvcFacade) {
	h := NewDashboardHandler(ds)
	rg.GET("/dashboard/stats", h.GetStats)
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Returns spending totals, the daily trend, category breakdown,
// @Description and top merchants for the requested period, normalized to the
// @Description requested display currency. An unknown currency falls back to
// @Description USD.
// @Tags dashboard
// @Produce json
// @Param from query string true "Inclusive start date (YYYY-MM-DD)"
// @Param to query string true "Inclusive end date (YYYY-MM-DD)"
// @Param currency query string false "Display currency" default(USD)
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.DashboardStatsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	from, err := time.ParseInLocation("2006-01-02", params.From, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid from date"})
		return
	}
	to, err := time.ParseInLocation("2006-01-02", params.To, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid to date"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "to must not be before from"})
		return
	}
	// to is inclusive; cover the whole final day.
	to = to.Add(24*time.Hour - time.Nanosecond)

	stats, err := h.dashboardService.GetStats(c.Request.Context(), userID, from, to, domain.CurrencyCode(params.Currency))
	if err != nil {
		respondWithError(c, err, "Failed to compute dashboard stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
