package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rigforge/internal/model"
	"rigforge/internal/service"
	"rigforge/pkg/logger"
)

// PartHandler handles catalog part CRUD APIs
type PartHandler struct {
	partService *service.PartService
}

// NewPartHandler creates a new part handler
func NewPartHandler(partService *service.PartService) *PartHandler {
	return &PartHandler{
		partService: partService,
	}
}

// CreatePart creates a new catalog part
// @Summary Create part
// @Description Add a part to the catalog
// @Tags Parts
// @Accept json
// @Produce json
// @Param request body model.Part true "Part definition"
// @Success 200 {object} model.Part
// @Router /api/v1/parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	var part model.Part
	if err := c.ShouldBindJSON(&part); err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to bind create part request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.InfoCtx(c.Request.Context(), "Creating part: name=%s, category=%s", part.Name, part.Category)

	created, err := h.partService.CreatePart(c.Request.Context(), &part)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to create part: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, created)
}

// GetPart gets part details
// @Summary Get part details
// @Description Get a single catalog part by id
// @Tags Parts
// @Produce json
// @Param id path string true "Part id"
// @Success 200 {object} model.Part
// @Router /api/v1/parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	partID := c.Param("id")

	part, err := h.partService.GetPart(c.Request.Context(), partID)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to get part: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, part)
}

// ListParts lists catalog parts
// @Summary List parts
// @Description List catalog parts, optionally filtered by category
// @Tags Parts
// @Produce json
// @Param category query string false "Filter by category (cpu, gpu, ...)"
// @Success 200 {array} model.Part
// @Router /api/v1/parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	category := c.Query("category")

	parts, err := h.partService.ListParts(c.Request.Context(), category)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to list parts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, parts)
}

// UpdatePart updates a part
// @Summary Update part
// @Description Update an existing catalog part
// @Tags Parts
// @Accept json
// @Produce json
// @Param id path string true "Part id"
// @Param request body model.Part true "Part definition"
// @Success 200 {object} model.Part
// @Router /api/v1/parts/{id} [put]
func (h *PartHandler) UpdatePart(c *gin.Context) {
	var part model.Part
	if err := c.ShouldBindJSON(&part); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	part.ID = c.Param("id")

	updated, err := h.partService.UpdatePart(c.Request.Context(), &part)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to update part: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePart deletes a part
// @Summary Delete part
// @Description Remove a part from the catalog
// @Tags Parts
// @Param id path string true "Part id"
// @Router /api/v1/parts/{id} [delete]
func (h *PartHandler) DeletePart(c *gin.Context) {
	partID := c.Param("id")

	if err := h.partService.DeletePart(c.Request.Context(), partID); err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to delete part: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": partID})
}
