package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/explorekashmir/tours/config"
	"github.com/explorekashmir/tours/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client   *redis.Client
	toursTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, toursTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		toursTTL: toursTTL,
	}
}

func (c *RedisCache) GetTours(ctx context.Context, destinationID int64) ([]domain.Tour, error) {
	data, err := c.client.Get(ctx, toursKey(destinationID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var tours []domain.Tour
	if err := json.Unmarshal(data, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (c *RedisCache) SetTours(ctx context.Context, destinationID int64, tours []domain.Tour) error {
	payload, err := json.Marshal(tours)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, toursKey(destinationID), payload, c.toursTTL).Err()
}

// AcquireSlotHold blocks a second pending booking for the same tour and email
// while the first hold is alive.
func (c *RedisCache) AcquireSlotHold(ctx context.Context, tourID int64, email string, ttl time.Duration) (bool, error) {
	key := slotHoldKey(tourID, email)
	return c.client.SetNX(ctx, key, "held", ttl).Result()
}

func (c *RedisCache) ReleaseSlotHold(ctx context.Context, tourID int64, email string) error {
	return c.client.Del(ctx, slotHoldKey(tourID, email)).Err()
}

func toursKey(destinationID int64) string {
	if destinationID == 0 {
		return "cache:tours"
	}
	return fmt.Sprintf("cache:tours:dest:%d", destinationID)
}

func slotHoldKey(tourID int64, email string) string {
	return fmt.Sprintf("hold:tour:%d:email:%s", tourID, email)
}
