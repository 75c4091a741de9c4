package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sharpfade/barbershop-backend/internal/barber"
	"github.com/sharpfade/barbershop-backend/internal/pkg/response"
)

type Handler struct {
	service barber.Service
}

func NewHandler(service barber.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := barber.Filter{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	barbers, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list barbers"})
		return
	}

	items := make([]BarberResponse, len(barbers))
	for i, b := range barbers {
		items[i] = NewBarberResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == barber.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "barber not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get barber"})
		return
	}

	c.JSON(http.StatusOK, NewBarberResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBarberRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), barber.CreateRequest{
		Name:           body.Name,
		Specialization: body.Specialization,
	})
	if err != nil {
		if err == barber.ErrEmptyName {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create barber"})
		return
	}

	c.JSON(http.StatusCreated, NewBarberResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateBarberRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, barber.UpdateRequest{
		Name:           body.Name,
		Specialization: body.Specialization,
	})
	if err != nil {
		switch err {
		case barber.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "barber not found"})
		case barber.ErrEmptyName:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update barber"})
		}
		return
	}

	c.JSON(http.StatusOK, NewBarberResponse(b))
}

func (h *Handler) SetStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body SetBarberStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.SetStatus(c.Request.Context(), id, barber.Status(body.Status))
	if err != nil {
		if err == barber.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "barber not found"})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBarberResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == barber.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "barber not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete barber"})
		return
	}

	c.Status(http.StatusNoContent)
}
