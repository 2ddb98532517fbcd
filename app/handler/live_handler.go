package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"rigforge/internal/model"
	"rigforge/internal/service"
	"rigforge/pkg/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins, production should use stricter checks
	},
}

// liveError is sent back when an incoming snapshot cannot be evaluated
type liveError struct {
	Error string `json:"error"`
}

// LiveHandler streams evaluations over a WebSocket. Each incoming message is
// a configuration snapshot; each reply is the evaluation result for it.
// Configurator UIs use this to re-score a build on every part change.
type LiveHandler struct {
	buildService *service.BuildService
}

// NewLiveHandler creates a new live evaluation handler
func NewLiveHandler(buildService *service.BuildService) *LiveHandler {
	return &LiveHandler{
		buildService: buildService,
	}
}

// Live upgrades the connection and evaluates snapshots as they arrive
// @Summary Live evaluation
// @Description WebSocket session evaluating each received configuration snapshot
// @Tags Evaluate
// @Router /v1/evaluate/live [get]
func (h *LiveHandler) Live(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to upgrade to websocket: %v", err)
		return
	}
	defer ws.Close()

	ctx := c.Request.Context()
	logger.InfoCtx(ctx, "live evaluation session started, client: %s", c.ClientIP())

	for {
		var cfg model.Configuration
		if err := ws.ReadJSON(&cfg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WarnCtx(ctx, "live evaluation session closed unexpectedly: %v", err)
			}
			return
		}

		result, err := h.buildService.EvaluateSnapshot(ctx, &cfg)
		if err != nil {
			if writeErr := ws.WriteJSON(liveError{Error: err.Error()}); writeErr != nil {
				return
			}
			continue
		}

		if err := ws.WriteJSON(result); err != nil {
			logger.WarnCtx(ctx, "failed to write evaluation result: %v", err)
			return
		}
	}
}
