package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)

	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("/:id/cancel", h.Cancel)

	// === Staff Routes ===
	staff := group.Group("")
	staff.Use(staffMiddleware)
	{
		staff.POST("/:id/complete", h.Complete)
	}
}
