package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/flood_control_system/internal/export"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/service"
	"github.com/sirupsen/logrus"
)

// DashboardSource отдает текущий снимок дашборда
type DashboardSource interface {
	Current(ctx context.Context) (*models.Dashboard, error)
}

// Services - контроллеры, которые обслуживает API
type Services struct {
	Areas     service.AreaService
	Projects  service.ProjectService
	Incidents service.IncidentService
	Reports   service.ReportService
}

type Handler struct {
	areaService     service.AreaService
	projectService  service.ProjectService
	incidentService service.IncidentService
	reportService   service.ReportService
	dashboard       DashboardSource
	logger          *logrus.Logger
}

func NewHandler(services Services, dashboard DashboardSource, logger *logrus.Logger) *Handler {
	return &Handler{
		areaService:     services.Areas,
		projectService:  services.Projects,
		incidentService: services.Incidents,
		reportService:   services.Reports,
		dashboard:       dashboard,
		logger:          logger,
	}
}

// parseID читает положительный числовой ID из пути
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError переводит ошибку контроллера в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Error(), Field: validationErr.Field})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Record not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, models.ErrAreaReferenced):
		log.WithError(err).Warn("Area is still referenced")
		c.JSON(http.StatusConflict, ErrorResponse{Error: models.ErrAreaReferenced.Error()})
	case errors.Is(err, models.ErrDuplicateArea):
		log.WithError(err).Warn("Duplicate area")
		c.JSON(http.StatusConflict, ErrorResponse{Error: models.ErrDuplicateArea.Error()})
	case errors.Is(err, models.ErrUnknownArea):
		log.WithError(err).Warn("Unknown area")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: models.ErrUnknownArea.Error(), Field: "area_id"})
	case errors.Is(err, models.ErrUnknownReport):
		log.WithError(err).Warn("Unknown report")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: models.ErrUnknownReport.Error()})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// writeCSV отдает таблицу как вложение CSV
func (h *Handler) writeCSV(c *gin.Context, log *logrus.Entry, filename string, table export.Table) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if err := export.WriteCSV(c.Writer, table); err != nil {
		log.WithError(err).Error("Failed to write CSV export")
	}
}

// @Summary Get dashboard
// @Description Get the summary cards and the average flood level chart
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.Dashboard
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")

	snapshot, err := h.dashboard.Current(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
