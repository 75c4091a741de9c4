package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/payments")
	group.Use(authMiddleware, staffMiddleware)

	group.POST("", h.Record)
	group.GET("", h.ListByBooking)
	group.GET("/:id", h.Get)
	group.POST("/:id/refund", h.Refund)
}
