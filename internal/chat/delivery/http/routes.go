package http

import (
	"github.com/gin-gonic/gin"

	"rahalah/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Process)
		chat.POST("/confidence", h.Confidence)
		chat.GET("/:session_id/history", h.History)
		chat.GET("/:session_id/preferences", h.Preferences)
	}
}
