package server

import (
	"net/http"

	"wasender-gateway/internal/config"
	"wasender-gateway/internal/middleware"
	"wasender-gateway/internal/webhook"
	"wasender-gateway/internal/ws"
	"wasender-gateway/pkg/wasender"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP routes. The /ws event stream is only mounted when
// hub is non-nil.
func NewRouter(cfg *config.Config, events wasender.Handler, hub *ws.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logging(), middleware.CORS())

	var notifier webhook.Notifier
	if hub != nil {
		notifier = hub
		r.GET("/ws", func(c *gin.Context) {
			hub.ServeWs(c.Writer, c.Request)
		})
	}
	webhookHandler := webhook.NewHandler(cfg, events, notifier)

	r.POST("/webhook", webhookHandler.HandleEvent)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
