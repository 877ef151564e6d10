package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avelhart/skybooking/config"
	"github.com/avelhart/skybooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache is a read-through cache for the flight list plus short-lived
// booking locks. It is never authoritative: misses and errors fall back to
// the database.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// AcquireBookingLock guards against duplicate submits of the same booking
// request before the database transaction runs.
func (c *RedisCache) AcquireBookingLock(ctx context.Context, userID, flightID int64, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, bookingLockKey(userID, flightID), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseBookingLock(ctx context.Context, userID, flightID int64) error {
	return c.client.Del(ctx, bookingLockKey(userID, flightID)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func bookingLockKey(userID, flightID int64) string {
	return fmt.Sprintf("lock:booking:user:%d:flight:%d", userID, flightID)
}
