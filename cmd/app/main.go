package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avelhart/skybooking/api"
	"github.com/avelhart/skybooking/config"
	"github.com/avelhart/skybooking/internal/bootstrap"
	"github.com/avelhart/skybooking/internal/cache"
	"github.com/avelhart/skybooking/internal/kafka"
	"github.com/avelhart/skybooking/internal/pkg/jwt"
	"github.com/avelhart/skybooking/internal/repository"
	"github.com/avelhart/skybooking/internal/service/auth"
	"github.com/avelhart/skybooking/internal/service/fleet"
	"github.com/avelhart/skybooking/internal/service/flights"
	"github.com/avelhart/skybooking/internal/service/ledger"
	"github.com/avelhart/skybooking/internal/service/reviews"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tokens := jwt.New(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMin)*time.Minute)

	userRepo := repository.NewUserRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)
	airportRepo := repository.NewAirportRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	walletRepo := repository.NewWalletRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	authService := auth.NewAuthService(userRepo, tokens)
	flightService := flights.NewFlightService(flightRepo, airplaneRepo, airportRepo, redisCache)
	fleetService := fleet.NewFleetService(airplaneRepo, airportRepo)
	reviewService := reviews.NewReviewService(reviewRepo, flightRepo)
	ledgerService := ledger.NewLedgerService(
		bookingRepo,
		walletRepo,
		flightRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingTopic,
		30*time.Second,
		time.Duration(cfg.Booking.ConfirmationTTL)*time.Minute,
		ledger.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	handlers := bootstrap.Handlers{
		Auth:     api.NewAuthHandler(authService),
		Flights:  api.NewFlightHandler(flightService),
		Fleet:    api.NewFleetHandler(fleetService),
		Bookings: api.NewBookingHandler(ledgerService),
		Wallet:   api.NewWalletHandler(ledgerService),
		Reviews:  api.NewReviewHandler(reviewService),
		Tokens:   tokens,
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
