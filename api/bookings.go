package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/avelhart/skybooking/internal/service/ledger"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service ledger.LedgerUseCase
}

type passengerRequest struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	PassportNumber string `json:"passport_number"`
}

type createBookingRequest struct {
	FlightID   int64              `json:"flight_id"`
	PriceCents int64              `json:"price_cents"`
	Passengers []passengerRequest `json:"passengers"`
}

type bookingResponse struct {
	ID           int64              `json:"id"`
	Reference    string             `json:"reference"`
	FlightID     int64              `json:"flight_id"`
	UserID       int64              `json:"user_id"`
	PriceCents   int64              `json:"price_cents"`
	DisplayPrice string             `json:"display_price"`
	Status       string             `json:"status"`
	Passengers   []passengerRequest `json:"passengers,omitempty"`
	CreatedAt    string             `json:"created_at"`
}

func NewBookingHandler(service ledger.LedgerUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", AdminOnly(), h.listAll)
	router.GET("/user", h.listOwn)
	router.GET("/:id", h.get)
	router.PUT("/:id/confirm", h.confirm)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passengers := make([]domain.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		passengers = append(passengers, domain.Passenger{Name: p.Name, Age: p.Age, PassportNumber: p.PassportNumber})
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), ledger.CreateBookingInput{
		FlightID:   req.FlightID,
		UserID:     currentUserID(c),
		PriceCents: req.PriceCents,
		Passengers: passengers,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

func (h *BookingHandler) listAll(c *gin.Context) {
	bookings, err := h.service.ListAllBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) listOwn(c *gin.Context) {
	bookings, err := h.service.ListUserBookings(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if booking.UserID != currentUserID(c) && !isAdmin(c) {
		respondError(c, domain.ErrForbidden)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func (h *BookingHandler) confirm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := h.service.ConfirmBooking(c.Request.Context(), id, currentUserID(c), isAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := h.service.CancelBooking(c.Request.Context(), id, currentUserID(c), isAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":       toBookingResponse(booking),
		"refund_cents":  booking.PriceCents,
		"refund_amount": displayAmount(booking.PriceCents),
	})
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	passengers := make([]passengerRequest, 0, len(b.Passengers))
	for _, p := range b.Passengers {
		passengers = append(passengers, passengerRequest{Name: p.Name, Age: p.Age, PassportNumber: p.PassportNumber})
	}
	return bookingResponse{
		ID:           b.ID,
		Reference:    b.Reference,
		FlightID:     b.FlightID,
		UserID:       b.UserID,
		PriceCents:   b.PriceCents,
		DisplayPrice: displayAmount(b.PriceCents),
		Status:       string(b.Status),
		Passengers:   passengers,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

func toBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}
