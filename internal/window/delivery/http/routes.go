package http

import (
	"github.com/gin-gonic/gin"

	"table-checkbox-sync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// goes through the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	windows := rg.Group("/windows", mw.RateLimit())
	{
		windows.POST("", h.Open)
		windows.DELETE("/:id", h.Close)
		windows.POST("/:id/input", h.Input)
		windows.POST("/:id/change", h.Change)
		windows.GET("/:id/document", h.Document)
		windows.PUT("/:id/document", h.Sync)
		windows.GET("/:id/stats", h.Stats)
	}
}
