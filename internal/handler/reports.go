package handler

import (
	"net/http"

	"stockbook/internal/dto"
	"stockbook/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// DashboardSummary godoc
// @Summary Aggregate totals and profit, optionally scoped to a season
// @Tags reports
// @Produce json
// @Param season_id query string false "Season UUID"
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 400 {object} apierror.Envelope
// @Router /api/dashboard-summary [get]
func (h *ReportsHandler) DashboardSummary(c *gin.Context) {
	resp, err := h.svc.DashboardSummary(c.Request.Context(), c.Query("season_id"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

func (h *ReportsHandler) Report(c *gin.Context) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "invalid query parameters"})
		return
	}
	resp, err := h.svc.Report(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

func (h *ReportsHandler) SeasonItemsCount(c *gin.Context) {
	resp, err := h.svc.SeasonItemsCount(c.Request.Context(), c.Query("season_id"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
