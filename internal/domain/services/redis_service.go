package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/infrastructure/config"
)

// RedisService wraps the cache connection used for response caching and
// rate-limit counters.
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService connects to Redis using the configured address.
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set stores a value as JSON with an expiration.
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get loads a JSON value into dest. Returns redis.Nil when the key is
// missing.
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete removes a key.
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// Ping verifies the connection is alive.
func (s *RedisService) Ping() error {
	return s.Client.Ping(s.Ctx).Err()
}
