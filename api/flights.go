package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/avelhart/skybooking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightRequest struct {
	Name                 string `json:"name"`
	AirplaneID           int64  `json:"airplane_id"`
	SourceAirportID      int64  `json:"source_airport_id"`
	DestinationAirportID int64  `json:"destination_airport_id"`
	DepartureTime        string `json:"departure_time"`
	ArrivalTime          string `json:"arrival_time"`
	Status               string `json:"status"`
	PriceCents           int64  `json:"price_cents"`
}

type flightResponse struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	AirplaneID           int64  `json:"airplane_id"`
	SourceAirportID      int64  `json:"source_airport_id"`
	DestinationAirportID int64  `json:"destination_airport_id"`
	DepartureTime        string `json:"departure_time"`
	ArrivalTime          string `json:"arrival_time"`
	Status               string `json:"status"`
	TotalSeats           int    `json:"total_seats"`
	AvailableSeats       int    `json:"available_seats"`
	PriceCents           int64  `json:"price_cents"`
	DisplayPrice         string `json:"display_price"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(public, admin *gin.RouterGroup) {
	public.GET("/", h.list)
	public.GET("/:id", h.get)
	admin.POST("/", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	flightList, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]flightResponse, 0, len(flightList))
	for i := range flightList {
		out = append(out, toFlightResponse(&flightList[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) create(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	flight, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlightResponse(flight))
}

func (h *FlightHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	flight, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flight deleted"})
}

func (h *FlightHandler) bindInput(c *gin.Context) (flights.FlightInput, bool) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return flights.FlightInput{}, false
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "departure_time must be RFC3339"})
		return flights.FlightInput{}, false
	}
	arrival, err := time.Parse(time.RFC3339, req.ArrivalTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "arrival_time must be RFC3339"})
		return flights.FlightInput{}, false
	}

	return flights.FlightInput{
		Name:                 req.Name,
		AirplaneID:           req.AirplaneID,
		SourceAirportID:      req.SourceAirportID,
		DestinationAirportID: req.DestinationAirportID,
		DepartureTime:        departure,
		ArrivalTime:          arrival,
		Status:               domain.FlightStatus(req.Status),
		PriceCents:           req.PriceCents,
	}, true
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		ID:                   f.ID,
		Name:                 f.Name,
		AirplaneID:           f.AirplaneID,
		SourceAirportID:      f.SourceAirportID,
		DestinationAirportID: f.DestinationAirportID,
		DepartureTime:        f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:          f.ArrivalTime.Format(time.RFC3339),
		Status:               string(f.Status),
		TotalSeats:           f.TotalSeats,
		AvailableSeats:       f.AvailableSeats,
		PriceCents:           f.PriceCents,
		DisplayPrice:         displayAmount(f.PriceCents),
	}
}
