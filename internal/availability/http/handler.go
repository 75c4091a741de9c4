package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sharpfade/barbershop-backend/internal/availability"
	"github.com/sharpfade/barbershop-backend/internal/barber"
	"github.com/sharpfade/barbershop-backend/internal/pkg/response"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

// ListForBarber serves the public day view consumed by booking front-ends.
func (h *Handler) ListForBarber(c *gin.Context) {
	barberID := c.Param("id")
	if _, err := uuid.Parse(barberID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter must be YYYY-MM-DD"})
		return
	}

	windows, err := h.service.WindowsFor(c.Request.Context(), barberID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list availability"})
		return
	}

	items := make([]WindowResponse, len(windows))
	for i := range windows {
		items[i] = NewWindowResponse(&windows[i])
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := availability.Filter{
		BarberID: c.Query("barber_id"),
		Page:     page,
		PageSize: pageSize,
	}
	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			filter.DateFrom = &t
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			filter.DateTo = &t
		}
	}

	windows, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list availability"})
		return
	}

	items := make([]WindowResponse, len(windows))
	for i, w := range windows {
		items[i] = NewWindowResponse(w)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateWindowRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	w, err := h.service.Create(c.Request.Context(), availability.CreateRequest{
		BarberID: body.BarberID,
		Date:     date,
		From:     body.From,
		Until:    body.Until,
		IsOpen:   *body.IsOpen,
		Reason:   body.Reason,
	})
	if err != nil {
		if err == barber.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "barber not found"})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewWindowResponse(w))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateWindowRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := availability.UpdateRequest{
		From:   body.From,
		Until:  body.Until,
		IsOpen: body.IsOpen,
		Reason: body.Reason,
	}
	if body.Date != nil {
		date, err := time.Parse(dateLayout, *body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		req.Date = &date
	}

	w, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewWindowResponse(w))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
