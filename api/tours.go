package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/explorekashmir/tours/internal/domain"
	"github.com/explorekashmir/tours/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type TourHandler struct {
	service catalog.CatalogUseCase
}

type createTourRequest struct {
	DestinationID int64  `json:"destination_id" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	DurationDays  int    `json:"duration_days" binding:"required,gt=0"`
	DepartureDate string `json:"departure_date" binding:"required"`
	TotalSlots    int    `json:"total_slots" binding:"required,gt=0"`
	PriceCents    int64  `json:"price_cents" binding:"required,gt=0"`
}

func NewTourHandler(service catalog.CatalogUseCase) *TourHandler {
	return &TourHandler{service: service}
}

func (h *TourHandler) Register(router *gin.RouterGroup, admin gin.HandlersChain) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", append(admin, h.create)...)
}

func (h *TourHandler) list(c *gin.Context) {
	var destinationID int64
	if raw := c.Query("destination_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid destination_id"})
			return
		}
		destinationID = id
	}

	tours, err := h.service.ListTours(c.Request.Context(), destinationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (h *TourHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	tour, err := h.service.GetTour(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *TourHandler) create(c *gin.Context) {
	var req createTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "departure_date must be RFC3339"})
		return
	}

	tour := &domain.Tour{
		DestinationID: req.DestinationID,
		Title:         req.Title,
		Description:   req.Description,
		DurationDays:  req.DurationDays,
		DepartureDate: departure,
		TotalSlots:    req.TotalSlots,
		PriceCents:    req.PriceCents,
	}
	if err := h.service.CreateTour(c.Request.Context(), tour); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tour)
}
