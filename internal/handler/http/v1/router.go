package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	areas := api.Group("/areas")
	{
		areas.POST("", h.createArea)
		areas.GET("", h.listAreas)
		areas.GET("/options", h.listAreaOptions)
		areas.GET("/export", h.exportAreas)
		areas.GET("/:id", h.getArea)
		areas.PUT("/:id", h.updateArea)
		areas.DELETE("/:id", h.deleteArea)
	}

	projects := api.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/export", h.exportProjects)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
	}

	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/export", h.exportIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}

	// Отчеты только на чтение
	reports := api.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.GET("/:kind", h.runReport)
		reports.GET("/:kind/export", h.exportReport)
	}

	api.GET("/dashboard", h.getDashboard)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
