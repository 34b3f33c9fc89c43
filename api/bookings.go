package api

import (
	"net/http"
	"time"

	"github.com/explorekashmir/tours/internal/domain"
	"github.com/explorekashmir/tours/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	TourID int64 `json:"tour_id" binding:"required"`
	Seats  int   `json:"seats" binding:"required,gt=0"`
}

type bookingResponse struct {
	Token     string `json:"token"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at"`
	TourID    int64  `json:"tour_id"`
	Seats     int    `json:"seats"`
	Email     string `json:"email"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.PUT("/:token", h.confirm)
	router.DELETE("/:token", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		TourID: req.TourID,
		Seats:  req.Seats,
		Email:  c.GetString(ctxUserEmail),
		UserID: c.GetInt64(ctxUserID),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListUserBookings(c.Request.Context(), c.GetInt64(ctxUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) confirm(c *gin.Context) {
	token := c.Param("token")
	booking, err := h.service.ConfirmBooking(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	token := c.Param("token")
	booking, err := h.service.CancelBooking(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		Token:     b.Token,
		Status:    string(b.Status),
		ExpiresAt: b.ExpiresAt.Format(time.RFC3339),
		TourID:    b.TourID,
		Seats:     b.Seats,
		Email:     b.Email,
	}
}
