package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheNaoLidas(clienteID string, count int64) error
	GetNaoLidas(clienteID string) (int64, bool)
	InvalidateNaoLidas(clienteID string) error
	Ping(ctx context.Context) error
	Close() error
}

/// RedisService handles Redis operations: generic JSON cache plus the
// per-resident unread-notification counter
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
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

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

func naoLidasKey(clienteID string) string {
	return fmt.Sprintf("notificacoes:naolidas:%s", clienteID)
}

// CacheNaoLidas stores the unread counter for 5 minutes
func (s *RedisService) CacheNaoLidas(clienteID string, count int64) error {
	return s.Client.Set(s.Ctx, naoLidasKey(clienteID), count, 5*time.Minute).Err()
}

// GetNaoLidas returns the cached unread counter, false on miss
func (s *RedisService) GetNaoLidas(clienteID string) (int64, bool) {
	count, err := s.Client.Get(s.Ctx, naoLidasKey(clienteID)).Int64()
	if err != nil {
		return 0, false
	}
	return count, true
}

// InvalidateNaoLidas drops the counter after any write to the
// resident's notifications
func (s *RedisService) InvalidateNaoLidas(clienteID string) error {
	return s.Client.Del(s.Ctx, naoLidasKey(clienteID)).Err()
}

// Ping checks connectivity, used by the health endpoint
func (s *RedisService) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

// Close releases the underlying connection pool
func (s *RedisService) Close() error {
	return s.Client.Close()
}
