package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/avelhart/skybooking/internal/kafka"
	"github.com/avelhart/skybooking/internal/repository"
	"github.com/google/uuid"
)

// LedgerUseCase owns the coupling between booking lifecycle and wallet state:
// a booking debits its price exactly once at creation and credits exactly the
// same amount at most once, on cancellation. Confirmation moves no money.
type LedgerUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID, userID int64, admin bool) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID, userID int64, admin bool) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
	ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)
	GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error)
	AddFunds(ctx context.Context, userID, amountCents int64) (*domain.Wallet, error)
	ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error)
}

type Cache interface {
	AcquireBookingLock(ctx context.Context, userID, flightID int64, ttl time.Duration) (bool, error)
	ReleaseBookingLock(ctx context.Context, userID, flightID int64) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type LedgerService struct {
	bookings           repository.BookingRepository
	wallets            repository.WalletRepository
	flights            repository.FlightRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	lockTTL            time.Duration
	confirmationTTL    time.Duration
}

type CreateBookingInput struct {
	FlightID   int64              `json:"flight_id"`
	UserID     int64              `json:"user_id"`
	PriceCents int64              `json:"price_cents"`
	Passengers []domain.Passenger `json:"passengers"`
}

type LedgerServiceOption func(*LedgerService)

func WithNotificationsTopic(topic string) LedgerServiceOption {
	return func(s *LedgerService) {
		s.notificationsTopic = topic
	}
}

func NewLedgerService(
	bookings repository.BookingRepository,
	wallets repository.WalletRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	lockTTL, confirmationTTL time.Duration,
	opts ...LedgerServiceOption,
) *LedgerService {
	service := &LedgerService{
		bookings:        bookings,
		wallets:         wallets,
		flights:         flights,
		cache:           cache,
		producer:        producer,
		bookingTopic:    bookingTopic,
		lockTTL:         lockTTL,
		confirmationTTL: confirmationTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *LedgerService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.PriceCents < 0 {
		return nil, domain.ErrInvalidAmount
	}
	if len(input.Passengers) == 0 {
		return nil, fmt.Errorf("%w: at least one passenger is required", domain.ErrValidation)
	}
	for _, p := range input.Passengers {
		if p.Name == "" || p.Age <= 0 {
			return nil, fmt.Errorf("%w: passenger name and age are required", domain.ErrValidation)
		}
	}

	if _, err := s.flights.GetByID(ctx, input.FlightID); err != nil {
		return nil, err
	}

	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireBookingLock(ctx, input.UserID, input.FlightID, s.lockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: a booking for this flight is already in progress", domain.ErrValidation)
		}
		locked = true
	}

	booking := &domain.Booking{
		Reference:  uuid.NewString(),
		UserID:     input.UserID,
		FlightID:   input.FlightID,
		PriceCents: input.PriceCents,
		Passengers: input.Passengers,
	}

	if err := s.bookings.CreateWithPayment(ctx, booking); err != nil {
		if locked {
			_ = s.cache.ReleaseBookingLock(ctx, input.UserID, input.FlightID)
		}
		return nil, err
	}
	if locked {
		_ = s.cache.ReleaseBookingLock(ctx, input.UserID, input.FlightID)
	}

	s.invalidateFlights(ctx)
	s.publish(ctx, "booking_created", booking, 0)
	return booking, nil
}

func (s *LedgerService) ConfirmBooking(ctx context.Context, bookingID, userID int64, admin bool) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !admin && current.UserID != userID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.bookings.ConfirmPending(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_confirmed", updated, 0)
	return updated, nil
}

func (s *LedgerService) CancelBooking(ctx context.Context, bookingID, userID int64, admin bool) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !admin && current.UserID != userID {
		return nil, domain.ErrForbidden
	}

	cancelled, err := s.bookings.CancelWithRefund(ctx, bookingID)
	if err != nil {
		// Cancelling twice is a no-op, not a failure.
		if errors.Is(err, domain.ErrAlreadyCancelled) {
			return cancelled, nil
		}
		return nil, err
	}

	s.invalidateFlights(ctx)
	s.publish(ctx, "booking_cancelled", cancelled, cancelled.PriceCents)
	return cancelled, nil
}

func (s *LedgerService) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, bookingID)
}

func (s *LedgerService) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *LedgerService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func (s *LedgerService) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	return s.wallets.GetOrCreate(ctx, userID)
}

func (s *LedgerService) AddFunds(ctx context.Context, userID, amountCents int64) (*domain.Wallet, error) {
	if amountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.wallets.Deposit(ctx, userID, amountCents, uuid.NewString(), "Added funds to wallet")
}

// ExpirePendingBookings cancels every pending booking older than the
// confirmation TTL through the normal refund path.
func (s *LedgerService) ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error) {
	deadline := time.Now().Add(-s.confirmationTTL)
	ids, err := s.bookings.ListPendingBefore(ctx, deadline)
	if err != nil {
		return nil, err
	}

	var expired []domain.Booking
	for _, id := range ids {
		cancelled, err := s.bookings.CancelWithRefund(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyCancelled) {
				continue
			}
			log.Printf("expire booking %d: %v", id, err)
			continue
		}
		expired = append(expired, *cancelled)
		s.publish(ctx, "booking_expired", cancelled, cancelled.PriceCents)
	}
	if len(expired) > 0 {
		s.invalidateFlights(ctx)
	}
	return expired, nil
}

func (s *LedgerService) invalidateFlights(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("invalidate flights cache: %v", err)
	}
}

func (s *LedgerService) publish(ctx context.Context, eventType string, booking *domain.Booking, refundCents int64) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		Reference:   booking.Reference,
		BookingID:   booking.ID,
		FlightID:    booking.FlightID,
		UserID:      booking.UserID,
		PriceCents:  booking.PriceCents,
		RefundCents: refundCents,
		Status:      string(booking.Status),
		OccurredAt:  time.Now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		log.Printf("publish %s for booking %s: %v", eventType, booking.Reference, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event); err != nil {
			log.Printf("publish notification for booking %s: %v", booking.Reference, err)
		}
	}
}

var _ LedgerUseCase = (*LedgerService)(nil)
