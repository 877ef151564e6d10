package flights

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/avelhart/skybooking/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightInput struct {
	Name                 string
	AirplaneID           int64
	SourceAirportID      int64
	DestinationAirportID int64
	DepartureTime        time.Time
	ArrivalTime          time.Time
	Status               domain.FlightStatus
	PriceCents           int64
}

type FlightService struct {
	repo      repository.FlightRepository
	airplanes repository.AirplaneRepository
	airports  repository.AirportRepository
	cache     Cache
}

func NewFlightService(repo repository.FlightRepository, airplanes repository.AirplaneRepository, airports repository.AirportRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, airplanes: airplanes, airports: airports, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			log.Printf("cache flights: %v", err)
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	airplane, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		Name:                 input.Name,
		AirplaneID:           input.AirplaneID,
		SourceAirportID:      input.SourceAirportID,
		DestinationAirportID: input.DestinationAirportID,
		DepartureTime:        input.DepartureTime,
		ArrivalTime:          input.ArrivalTime,
		Status:               input.Status,
		TotalSeats:           airplane.TotalSeats,
		PriceCents:           input.PriceCents,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	flight.Name = input.Name
	flight.AirplaneID = input.AirplaneID
	flight.SourceAirportID = input.SourceAirportID
	flight.DestinationAirportID = input.DestinationAirportID
	flight.DepartureTime = input.DepartureTime
	flight.ArrivalTime = input.ArrivalTime
	flight.Status = input.Status
	flight.PriceCents = input.PriceCents

	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) validate(ctx context.Context, input FlightInput) (*domain.Airplane, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: flight name is required", domain.ErrValidation)
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid flight status %q", domain.ErrValidation, input.Status)
	}
	if !input.ArrivalTime.After(input.DepartureTime) {
		return nil, fmt.Errorf("%w: arrival time must be after departure time", domain.ErrValidation)
	}
	if input.PriceCents < 0 {
		return nil, domain.ErrInvalidAmount
	}

	airplane, err := s.airplanes.GetByID(ctx, input.AirplaneID)
	if err != nil {
		return nil, err
	}
	if _, err := s.airports.GetByID(ctx, input.SourceAirportID); err != nil {
		return nil, err
	}
	if _, err := s.airports.GetByID(ctx, input.DestinationAirportID); err != nil {
		return nil, err
	}
	return airplane, nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("invalidate flights cache: %v", err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
