package fleet

import (
	"context"
	"fmt"
	"unicode"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/avelhart/skybooking/internal/repository"
)

type FleetUseCase interface {
	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	CreateAirplane(ctx context.Context, airplane *domain.Airplane) error
	UpdateAirplane(ctx context.Context, airplane *domain.Airplane) error
	DeleteAirplane(ctx context.Context, id int64) error
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	CreateAirport(ctx context.Context, airport *domain.Airport) error
	UpdateAirport(ctx context.Context, airport *domain.Airport) error
	DeleteAirport(ctx context.Context, id int64) error
}

type FleetService struct {
	airplanes repository.AirplaneRepository
	airports  repository.AirportRepository
}

func NewFleetService(airplanes repository.AirplaneRepository, airports repository.AirportRepository) *FleetService {
	return &FleetService{airplanes: airplanes, airports: airports}
}

func (s *FleetService) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	return s.airplanes.List(ctx)
}

func (s *FleetService) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	if err := validateAirplane(airplane); err != nil {
		return err
	}
	return s.airplanes.Create(ctx, airplane)
}

func (s *FleetService) UpdateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	if err := validateAirplane(airplane); err != nil {
		return err
	}
	return s.airplanes.Update(ctx, airplane)
}

func (s *FleetService) DeleteAirplane(ctx context.Context, id int64) error {
	return s.airplanes.Delete(ctx, id)
}

func (s *FleetService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.airports.List(ctx)
}

func (s *FleetService) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	if err := validateAirport(airport); err != nil {
		return err
	}
	return s.airports.Create(ctx, airport)
}

func (s *FleetService) UpdateAirport(ctx context.Context, airport *domain.Airport) error {
	if err := validateAirport(airport); err != nil {
		return err
	}
	return s.airports.Update(ctx, airport)
}

func (s *FleetService) DeleteAirport(ctx context.Context, id int64) error {
	return s.airports.Delete(ctx, id)
}

func validateAirplane(a *domain.Airplane) error {
	if a.TailNumber == "" || a.Model == "" {
		return fmt.Errorf("%w: tail number and model are required", domain.ErrValidation)
	}
	if a.TotalSeats <= 0 {
		return fmt.Errorf("%w: total seats must be positive", domain.ErrValidation)
	}
	if a.EconomySeats+a.BusinessSeats+a.FirstClassSeats != a.TotalSeats {
		return fmt.Errorf("%w: seat classes must add up to total seats", domain.ErrValidation)
	}
	return nil
}

func validateAirport(a *domain.Airport) error {
	if a.Name == "" || a.City == "" || a.Country == "" {
		return fmt.Errorf("%w: name, city and country are required", domain.ErrValidation)
	}
	code := []rune(a.Code)
	if len(code) != 3 {
		return fmt.Errorf("%w: airport code must be exactly 3 letters", domain.ErrValidation)
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%w: airport code must be exactly 3 letters", domain.ErrValidation)
		}
	}
	return nil
}

var _ FleetUseCase = (*FleetService)(nil)
