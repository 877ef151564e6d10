package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avelhart/skybooking/api"
	"github.com/avelhart/skybooking/config"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth     *api.AuthHandler
	Flights  *api.FlightHandler
	Fleet    *api.FleetHandler
	Bookings *api.BookingHandler
	Wallet   *api.WalletHandler
	Reviews  *api.ReviewHandler
	Tokens   api.TokenValidator
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, h Handlers) error {
	router := NewRouter(h)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.Default()

	authRequired := api.AuthRequired(h.Tokens)

	h.Auth.RegisterPublic(router.Group("/api/auth"))
	h.Auth.RegisterProtected(router.Group("/api/users", authRequired))

	flightsPublic := router.Group("/api/flights")
	flightsAdmin := router.Group("/api/flights", authRequired, api.AdminOnly())
	h.Flights.Register(flightsPublic, flightsAdmin)
	h.Reviews.Register(flightsPublic, router.Group("/api/flights", authRequired))

	h.Fleet.RegisterAirplanes(router.Group("/api/airplanes", authRequired))
	h.Fleet.RegisterAirports(router.Group("/api/airports", authRequired))

	h.Bookings.Register(router.Group("/api/bookings", authRequired))
	h.Wallet.Register(router.Group("/api/wallet", authRequired))

	return router
}
