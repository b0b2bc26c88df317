package storage

import (
	"context"
	"log"
	"time"

	"booking-clone-server/config"

	"github.com/go-redis/redis/v8"
)

// Redis backs the public places-feed cache. It is optional: when nil every
// read goes straight to the database.
var Redis *redis.Client

const (
	placesFeedKey = "places:feed"
	placesFeedTTL = 60 * time.Second
)

func InitializeRedis(cfg *config.Config) {
	if cfg.RedisURL == "" {
		log.Println("REDIS_URL not set, places feed cache disabled")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: "",
		DB:       0,
	})
}

// CachedPlacesFeed returns the cached JSON payload of the public places
// listing, if any.
func CachedPlacesFeed(ctx context.Context) ([]byte, bool) {
	if Redis == nil {
		return nil, false
	}
	payload, err := Redis.Get(ctx, placesFeedKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func CachePlacesFeed(ctx context.Context, payload []byte) {
	if Redis == nil {
		return
	}
	Redis.Set(ctx, placesFeedKey, payload, placesFeedTTL)
}

// InvalidatePlacesFeed drops the cached listing after a place is created or
// updated.
func InvalidatePlacesFeed(ctx context.Context) {
	if Redis == nil {
		return
	}
	Redis.Del(ctx, placesFeedKey)
}
