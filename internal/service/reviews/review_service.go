package reviews

import (
	"context"
	"fmt"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/avelhart/skybooking/internal/repository"
)

type ReviewUseCase interface {
	Submit(ctx context.Context, userID, flightID int64, rating int, comment string) (*domain.Review, error)
	ListByFlight(ctx context.Context, flightID int64) ([]domain.Review, error)
}

type ReviewService struct {
	reviews repository.ReviewRepository
	flights repository.FlightRepository
}

func NewReviewService(reviews repository.ReviewRepository, flights repository.FlightRepository) *ReviewService {
	return &ReviewService{reviews: reviews, flights: flights}
}

func (s *ReviewService) Submit(ctx context.Context, userID, flightID int64, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	if _, err := s.flights.GetByID(ctx, flightID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		UserID:   userID,
		FlightID: flightID,
		Rating:   rating,
		Comment:  comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListByFlight(ctx context.Context, flightID int64) ([]domain.Review, error) {
	if _, err := s.flights.GetByID(ctx, flightID); err != nil {
		return nil, err
	}
	return s.reviews.ListByFlight(ctx, flightID)
}

var _ ReviewUseCase = (*ReviewService)(nil)
