package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/flood_control_system/internal/export"
)

// @Summary Create a new area
// @Description Create a new area. Blank population is stored as 0.
// @Tags Areas
// @Accept json
// @Produce json
// @Param area body AreaRequest true "Area form"
// @Success 201 {object} AreaResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 409 {object} ErrorResponse "Area already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /areas [post]
func (h *Handler) createArea(c *gin.Context) {
	var input AreaRequest
	log := h.logger.WithField("method", "createArea")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	area, err := h.areaService.AddArea(c.Request.Context(), AreaRequestToForm(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAreaResponse(area))
}

// @Summary Get a list of areas
// @Description Get all areas ordered by ID
// @Tags Areas
// @Produce json
// @Success 200 {array} AreaResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /areas [get]
func (h *Handler) listAreas(c *gin.Context) {
	log := h.logger.WithField("method", "listAreas")

	areas, err := h.areaService.ListAreas(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAreaResponses(areas))
}

// @Summary Get area options
// @Description Get the area choices for project and incident forms
// @Tags Areas
// @Produce json
// @Success 200 {array} models.AreaOption
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /areas/options [get]
func (h *Handler) listAreaOptions(c *gin.Context) {
	log := h.logger.WithField("method", "listAreaOptions")

	options, err := h.areaService.ListAreaOptions(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// @Summary Export areas
// @Description Export the area list as CSV
// @Tags Areas
// @Produce text/csv
// @Success 200 {file} file "areas.csv"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /areas/export [get]
func (h *Handler) exportAreas(c *gin.Context) {
	log := h.logger.WithField("method", "exportAreas")

	areas, err := h.areaService.ListAreas(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.writeCSV(c, log, "areas.csv", export.AreasTable(areas))
}

// @Summary Get area by ID
// @Tags Areas
// @Produce json
// @Param id path int true "Area ID"
// @Success 200 {object} AreaResponse
// @Failure 400 {object} ErrorResponse "Invalid area ID"
// @Failure 404 {object} ErrorResponse "Area not found"
// @Router /areas/{id} [get]
func (h *Handler) getArea(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getArea").WithField("id", id)

	area, err := h.areaService.GetArea(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAreaResponse(area))
}

// @Summary Update an existing area
// @Tags Areas
// @Accept json
// @Produce json
// @Param id path int true "Area ID"
// @Param area body AreaRequest true "Area form"
// @Success 200 {object} AreaResponse
// @Failure 400 {object} ErrorResponse "Invalid area ID or validation error"
// @Failure 404 {object} ErrorResponse "Area not found"
// @Failure 409 {object} ErrorResponse "Area already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /areas/{id} [put]
func (h *Handler) updateArea(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateArea").WithField("id", id)

	var input AreaRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	area, err := h.areaService.UpdateArea(c.Request.Context(), id, AreaRequestToForm(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAreaResponse(area))
}

// @Summary Delete an area
// @Description Delete an area. Fails while projects or incidents still reference it.
// @Tags Areas
// @Param id path int true "Area ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid area ID"
// @Failure 404 {object} ErrorResponse "Area not found"
// @Failure 409 {object} ErrorResponse "Area is referenced"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /areas/{id} [delete]
func (h *Handler) deleteArea(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteArea").WithField("id", id)

	if err := h.areaService.DeleteArea(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
