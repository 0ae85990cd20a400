package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/flood_control_system/internal/export"
	"github.com/shenikar/flood_control_system/internal/models"
)

// @Summary List reports
// @Description List the fixed reports that can be run
// @Tags Reports
// @Produce json
// @Success 200 {array} ReportKindResponse
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	c.JSON(http.StatusOK, ReportKindsToResponses(h.reportService.ListReports()))
}

// @Summary Run a report
// @Description Run a report and return its table and chart. The chart is omitted when there is nothing to plot.
// @Tags Reports
// @Produce json
// @Param kind path string true "Report kind" Enums(top-damage-areas, recent-incidents, delayed-projects, project-status-distribution)
// @Success 200 {object} models.Report
// @Failure 400 {object} ErrorResponse "Unknown report"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /reports/{kind} [get]
func (h *Handler) runReport(c *gin.Context) {
	kind := models.ReportKind(c.Param("kind"))
	log := h.logger.WithField("method", "runReport").WithField("kind", kind)

	report, err := h.reportService.RunReport(c.Request.Context(), kind)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Export a report
// @Description Run a report and export its table as CSV
// @Tags Reports
// @Produce text/csv
// @Param kind path string true "Report kind"
// @Success 200 {file} file "report.csv"
// @Failure 400 {object} ErrorResponse "Unknown report"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /reports/{kind}/export [get]
func (h *Handler) exportReport(c *gin.Context) {
	kind := models.ReportKind(c.Param("kind"))
	log := h.logger.WithField("method", "exportReport").WithField("kind", kind)

	report, err := h.reportService.RunReport(c.Request.Context(), kind)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.writeCSV(c, log, string(kind)+".csv", export.ReportTable(report))
}
