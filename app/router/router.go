package router

import (
	"rigforge/app/handler"
	"rigforge/app/middleware"

	"github.com/gin-gonic/gin"
)

// Router Router
type Router struct {
	partHandler     *handler.PartHandler
	buildHandler    *handler.BuildHandler
	evaluateHandler *handler.EvaluateHandler
	liveHandler     *handler.LiveHandler
}

// NewRouter creates a new Router
func NewRouter(partHandler *handler.PartHandler, buildHandler *handler.BuildHandler, evaluateHandler *handler.EvaluateHandler, liveHandler *handler.LiveHandler) *Router {
	return &Router{
		partHandler:     partHandler,
		buildHandler:    buildHandler,
		evaluateHandler: evaluateHandler,
		liveHandler:     liveHandler,
	}
}

// Setup sets up routes
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger())

	// V1 API - evaluation interface
	v1 := engine.Group("/v1")
	{
		v1.POST("/evaluate", r.evaluateHandler.Evaluate)
		v1.GET("/evaluate/live", r.liveHandler.Live)
		v1.GET("/catalog/version", r.evaluateHandler.CatalogVersion)
	}

	// API v1 - catalog and build management interface
	api := engine.Group("/api/v1")
	api.Use(middleware.AuthMiddleware())
	{
		parts := api.Group("/parts")
		{
			parts.POST("", r.partHandler.CreatePart)
			parts.GET("", r.partHandler.ListParts)
			parts.GET("/:id", r.partHandler.GetPart)
			parts.PUT("/:id", r.partHandler.UpdatePart)
			parts.DELETE("/:id", r.partHandler.DeletePart)
		}

		builds := api.Group("/builds")
		{
			builds.POST("", r.buildHandler.CreateBuild)
			builds.GET("", r.buildHandler.ListBuilds)
			builds.GET("/:id", r.buildHandler.GetBuild)
			builds.PUT("/:id", r.buildHandler.UpdateBuild)
			builds.DELETE("/:id", r.buildHandler.DeleteBuild)
			builds.POST("/:id/evaluate", r.buildHandler.EvaluateBuild)
		}
	}

	// Health check
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
