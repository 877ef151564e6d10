package api

import (
	"net/http"
	"strconv"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/avelhart/skybooking/internal/service/fleet"
	"github.com/gin-gonic/gin"
)

type FleetHandler struct {
	service fleet.FleetUseCase
}

type airplaneRequest struct {
	TailNumber      string `json:"tail_number"`
	Model           string `json:"model"`
	TotalSeats      int    `json:"total_seats"`
	EconomySeats    int    `json:"economy_seats"`
	BusinessSeats   int    `json:"business_seats"`
	FirstClassSeats int    `json:"first_class_seats"`
}

type airportRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Code    string `json:"code"`
}

func NewFleetHandler(service fleet.FleetUseCase) *FleetHandler {
	return &FleetHandler{service: service}
}

func (h *FleetHandler) RegisterAirplanes(router *gin.RouterGroup) {
	router.GET("/", h.listAirplanes)
	router.POST("/", AdminOnly(), h.createAirplane)
	router.PUT("/:id", AdminOnly(), h.updateAirplane)
	router.DELETE("/:id", AdminOnly(), h.deleteAirplane)
}

func (h *FleetHandler) RegisterAirports(router *gin.RouterGroup) {
	router.GET("/", h.listAirports)
	router.POST("/", AdminOnly(), h.createAirport)
	router.PUT("/:id", AdminOnly(), h.updateAirport)
	router.DELETE("/:id", AdminOnly(), h.deleteAirport)
}

func (h *FleetHandler) listAirplanes(c *gin.Context) {
	airplanes, err := h.service.ListAirplanes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplanes)
}

func (h *FleetHandler) createAirplane(c *gin.Context) {
	var req airplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airplane := domain.Airplane{
		TailNumber:      req.TailNumber,
		Model:           req.Model,
		TotalSeats:      req.TotalSeats,
		EconomySeats:    req.EconomySeats,
		BusinessSeats:   req.BusinessSeats,
		FirstClassSeats: req.FirstClassSeats,
	}
	if err := h.service.CreateAirplane(c.Request.Context(), &airplane); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplane)
}

func (h *FleetHandler) updateAirplane(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid airplane id"})
		return
	}
	var req airplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airplane := domain.Airplane{
		ID:              id,
		TailNumber:      req.TailNumber,
		Model:           req.Model,
		TotalSeats:      req.TotalSeats,
		EconomySeats:    req.EconomySeats,
		BusinessSeats:   req.BusinessSeats,
		FirstClassSeats: req.FirstClassSeats,
	}
	if err := h.service.UpdateAirplane(c.Request.Context(), &airplane); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplane)
}

func (h *FleetHandler) deleteAirplane(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid airplane id"})
		return
	}
	if err := h.service.DeleteAirplane(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Airplane deleted"})
}

func (h *FleetHandler) listAirports(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *FleetHandler) createAirport(c *gin.Context) {
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airport := domain.Airport{Name: req.Name, City: req.City, Country: req.Country, Code: req.Code}
	if err := h.service.CreateAirport(c.Request.Context(), &airport); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airport)
}

func (h *FleetHandler) updateAirport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid airport id"})
		return
	}
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airport := domain.Airport{ID: id, Name: req.Name, City: req.City, Country: req.Country, Code: req.Code}
	if err := h.service.UpdateAirport(c.Request.Context(), &airport); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airport)
}

func (h *FleetHandler) deleteAirport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid airport id"})
		return
	}
	if err := h.service.DeleteAirport(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Airport deleted"})
}
