package api

import (
	"net/http"
	"strconv"

	"github.com/explorekashmir/tours/internal/domain"
	"github.com/explorekashmir/tours/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type DestinationHandler struct {
	service catalog.CatalogUseCase
}

type createDestinationRequest struct {
	Name        string `json:"name" binding:"required"`
	Region      string `json:"region" binding:"required"`
	Description string `json:"description"`
	BestSeason  string `json:"best_season"`
}

func NewDestinationHandler(service catalog.CatalogUseCase) *DestinationHandler {
	return &DestinationHandler{service: service}
}

func (h *DestinationHandler) Register(router *gin.RouterGroup, admin gin.HandlersChain) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", append(admin, h.create)...)
}

func (h *DestinationHandler) list(c *gin.Context) {
	dests, err := h.service.ListDestinations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dests)
}

func (h *DestinationHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	dest, err := h.service.GetDestination(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dest)
}

func (h *DestinationHandler) create(c *gin.Context) {
	var req createDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dest := &domain.Destination{
		Name:        req.Name,
		Region:      req.Region,
		Description: req.Description,
		BestSeason:  req.BestSeason,
	}
	if err := h.service.CreateDestination(c.Request.Context(), dest); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dest)
}
