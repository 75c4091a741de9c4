package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sharpfade/barbershop-backend/internal/client"
	"github.com/sharpfade/barbershop-backend/internal/pkg/request"
	"github.com/sharpfade/barbershop-backend/internal/pkg/response"
)

type Handler struct {
	service client.Service
}

func NewHandler(service client.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}
	params.Normalize()

	filter := client.Filter{
		Phone:    c.Query("phone"),
		Page:     params.Page,
		PageSize: params.PageSize,
	}

	clients, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
		return
	}

	items := make([]ClientResponse, len(clients))
	for i, cl := range clients {
		items[i] = NewClientResponse(cl)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, params.Page, params.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	cl, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == client.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get client"})
		return
	}

	c.JSON(http.StatusOK, NewClientResponse(cl))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateClientRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	cl, err := h.service.Create(c.Request.Context(), client.CreateRequest{
		Name:  body.Name,
		Phone: body.Phone,
		Email: body.Email,
	})
	if err != nil {
		switch err {
		case client.ErrEmptyName, client.ErrEmptyPhone:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case client.ErrPhoneAlreadyUsed:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create client"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewClientResponse(cl))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == client.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete client"})
		return
	}

	c.Status(http.StatusNoContent)
}
