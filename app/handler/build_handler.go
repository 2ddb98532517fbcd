package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rigforge/internal/model"
	"rigforge/internal/service"
	"rigforge/pkg/logger"
)

// BuildHandler handles saved build APIs
type BuildHandler struct {
	buildService *service.BuildService
}

// NewBuildHandler creates a new build handler
func NewBuildHandler(buildService *service.BuildService) *BuildHandler {
	return &BuildHandler{
		buildService: buildService,
	}
}

// CreateBuild saves a new build
// @Summary Save build
// @Description Save a configuration snapshot and evaluate it
// @Tags Builds
// @Accept json
// @Produce json
// @Param request body model.Configuration true "Configuration snapshot"
// @Success 200 {object} service.BuildSummary
// @Router /api/v1/builds [post]
func (h *BuildHandler) CreateBuild(c *gin.Context) {
	var cfg model.Configuration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to bind create build request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.InfoCtx(c.Request.Context(), "Saving build: name=%s", cfg.Name)

	summary, err := h.buildService.CreateBuild(c.Request.Context(), &cfg)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to save build: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetBuild gets a saved build
// @Summary Get build
// @Description Get a saved build with its last evaluation
// @Tags Builds
// @Produce json
// @Param id path string true "Build id"
// @Success 200 {object} service.BuildSummary
// @Router /api/v1/builds/{id} [get]
func (h *BuildHandler) GetBuild(c *gin.Context) {
	buildID := c.Param("id")

	summary, err := h.buildService.GetBuild(c.Request.Context(), buildID)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to get build: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListBuilds lists saved builds
// @Summary List builds
// @Description List all saved builds
// @Tags Builds
// @Produce json
// @Success 200 {array} service.BuildSummary
// @Router /api/v1/builds [get]
func (h *BuildHandler) ListBuilds(c *gin.Context) {
	summaries, err := h.buildService.ListBuilds(c.Request.Context())
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to list builds: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// UpdateBuild replaces a saved build's configuration
// @Summary Update build
// @Description Replace the configuration of a saved build and re-evaluate it
// @Tags Builds
// @Accept json
// @Produce json
// @Param id path string true "Build id"
// @Param request body model.Configuration true "Configuration snapshot"
// @Success 200 {object} service.BuildSummary
// @Router /api/v1/builds/{id} [put]
func (h *BuildHandler) UpdateBuild(c *gin.Context) {
	var cfg model.Configuration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg.ID = c.Param("id")

	summary, err := h.buildService.UpdateBuild(c.Request.Context(), &cfg)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to update build: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// DeleteBuild deletes a saved build
// @Summary Delete build
// @Description Delete a saved build
// @Tags Builds
// @Param id path string true "Build id"
// @Router /api/v1/builds/{id} [delete]
func (h *BuildHandler) DeleteBuild(c *gin.Context) {
	buildID := c.Param("id")

	if err := h.buildService.DeleteBuild(c.Request.Context(), buildID); err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to delete build: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": buildID})
}

// EvaluateBuild evaluates a saved build against the current catalog
// @Summary Evaluate build
// @Description Run the compatibility engine for a saved build
// @Tags Builds
// @Produce json
// @Param id path string true "Build id"
// @Success 200 {object} model.CompatibilityResult
// @Router /api/v1/builds/{id}/evaluate [post]
func (h *BuildHandler) EvaluateBuild(c *gin.Context) {
	buildID := c.Param("id")

	result, err := h.buildService.EvaluateBuild(c.Request.Context(), buildID)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to evaluate build: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
