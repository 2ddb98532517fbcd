package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rigforge/internal/catalog"
	"rigforge/internal/model"
	"rigforge/internal/service"
	"rigforge/pkg/logger"
)

// EvaluateHandler handles ad-hoc configuration evaluation
type EvaluateHandler struct {
	buildService *service.BuildService
	cat          catalog.Lookup
}

// NewEvaluateHandler creates a new evaluate handler
func NewEvaluateHandler(buildService *service.BuildService, cat catalog.Lookup) *EvaluateHandler {
	return &EvaluateHandler{
		buildService: buildService,
		cat:          cat,
	}
}

// Evaluate evaluates a configuration snapshot without saving it
// @Summary Evaluate configuration
// @Description Run the compatibility engine against a configuration snapshot
// @Tags Evaluate
// @Accept json
// @Produce json
// @Param request body model.Configuration true "Configuration snapshot"
// @Success 200 {object} model.CompatibilityResult
// @Router /v1/evaluate [post]
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var cfg model.Configuration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to bind evaluate request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.buildService.EvaluateSnapshot(c.Request.Context(), &cfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CatalogVersion reports the active physical spec catalog version
// @Summary Catalog version
// @Description Get the version of the active physical spec catalog
// @Tags Evaluate
// @Produce json
// @Router /v1/catalog/version [get]
func (h *EvaluateHandler) CatalogVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": h.cat.Version()})
}
