package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"colectivo/internal/domain/models"
	"colectivo/internal/pricing"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const activeServicesKey = "catalog:services:active"

// ErrMiss is returned by a Store when the key is absent.
var ErrMiss = errors.New("cache miss")

// Store is the minimal key/value surface the cache needs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

func NewRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// RedisStore adapts a go-redis client to Store.
type RedisStore struct {
	Client *redis.Client
}

func (s RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (s RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.Client.Set(ctx, key, value, ttl).Err()
}

func (s RedisStore) Del(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}

// ActiveServices caches the active-service list in front of a catalog.
// Price tiers always go to the source. Cache failures are logged and the
// source is used, so a dead Redis never blocks quoting.
type ActiveServices struct {
	Source pricing.Catalog
	Store  Store
	TTL    time.Duration
}

func (c ActiveServices) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	if c.Store == nil {
		return c.Source.ListActiveServices(ctx)
	}

	raw, err := c.Store.Get(ctx, activeServicesKey)
	if err == nil {
		var cached []models.Service
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return cached, nil
		}
	} else if !errors.Is(err, ErrMiss) {
		log.WithError(err).Warn("active services cache read failed")
	}

	services, err := c.Source.ListActiveServices(ctx)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(services); err == nil {
		if err := c.Store.Set(ctx, activeServicesKey, b, c.TTL); err != nil {
			log.WithError(err).Warn("active services cache write failed")
		}
	}
	return services, nil
}

func (c ActiveServices) ListPriceTiers(ctx context.Context, serviceID int64) ([]models.PriceTier, error) {
	return c.Source.ListPriceTiers(ctx, serviceID)
}

// Invalidate drops the cached list; called after every catalog write.
func (c ActiveServices) Invalidate(ctx context.Context) error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Del(ctx, activeServicesKey)
}
