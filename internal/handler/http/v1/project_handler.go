package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/flood_control_system/internal/export"
)

// @Summary Create a new project
// @Description Create a new flood control project. Status defaults to Ongoing.
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body ProjectRequest true "Project form"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse "Invalid request body, validation error or unknown area"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects [post]
func (h *Handler) createProject(c *gin.Context) {
	var input ProjectRequest
	log := h.logger.WithField("method", "createProject")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	project, err := h.projectService.AddProject(c.Request.Context(), ProjectRequestToForm(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToProjectResponse(project))
}

// @Summary Get a list of projects
// @Description Get all projects, newest first
// @Tags Projects
// @Produce json
// @Success 200 {array} ProjectResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects [get]
func (h *Handler) listProjects(c *gin.Context) {
	log := h.logger.WithField("method", "listProjects")

	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToProjectResponses(projects))
}

// @Summary Export projects
// @Tags Projects
// @Produce text/csv
// @Success 200 {file} file "projects.csv"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/export [get]
func (h *Handler) exportProjects(c *gin.Context) {
	log := h.logger.WithField("method", "exportProjects")

	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.writeCSV(c, log, "projects.csv", export.ProjectsTable(projects))
}

// @Summary Get project by ID
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *Handler) getProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getProject").WithField("id", id)

	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProjectResponse(project))
}

// @Summary Update an existing project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body ProjectRequest true "Project form"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse "Invalid project ID, validation error or unknown area"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/{id} [put]
func (h *Handler) updateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateProject").WithField("id", id)

	var input ProjectRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, ProjectRequestToForm(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProjectResponse(project))
}

// @Summary Delete a project
// @Tags Projects
// @Param id path int true "Project ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/{id} [delete]
func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteProject").WithField("id", id)

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
