package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/availability")

	// === Public Routes ===
	// Day view for a barber, used by booking front-ends to render open slots.
	g.GET("/barbers/:id/availability", h.ListForBarber)

	// === Staff Routes ===
	group.Use(authMiddleware, staffMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
