package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CooldownStore suppresses repeat alerts for the same opportunity within a
// TTL window, so back-to-back runs don't spam the notifier.
type CooldownStore struct {
	client *redis.Client
}

func NewCooldownStore(addr, password string, db int) (*CooldownStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &CooldownStore{client: client}, nil
}

// Allow reports whether key may alert now, and if so starts its cooldown.
// SETNX makes the check-and-set atomic across concurrent runs.
func (s *CooldownStore) Allow(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, "alert:"+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cooldown check for %s: %w", key, err)
	}
	return ok, nil
}

func (s *CooldownStore) Close() error {
	return s.client.Close()
}
