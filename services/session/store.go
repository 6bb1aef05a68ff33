package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pawcare/models"

	"github.com/go-redis/redis/v8"
)

// The token pair lives under two fixed keys in durable storage so it
// survives a reload. Both slots are always written and cleared together.
const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
)

// Store persists the token pair between runs.
type Store interface {
	Load(ctx context.Context) (models.TokenPair, error)
	Save(ctx context.Context, pair models.TokenPair) error
	Clear(ctx context.Context) error
}

// RedisStore keeps the token pair in Redis.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Load(ctx context.Context) (models.TokenPair, error) {
	var pair models.TokenPair

	access, err := s.Client.Get(ctx, AccessTokenKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return models.TokenPair{}, fmt.Errorf("failed to load access token: %w", err)
	}
	refresh, err := s.Client.Get(ctx, RefreshTokenKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return models.TokenPair{}, fmt.Errorf("failed to load refresh token: %w", err)
	}

	pair.AccessToken = access
	pair.RefreshToken = refresh
	return pair, nil
}

func (s *RedisStore) Save(ctx context.Context, pair models.TokenPair) error {
	if err := s.Client.Set(ctx, AccessTokenKey, pair.AccessToken, 0).Err(); err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}
	if err := s.Client.Set(ctx, RefreshTokenKey, pair.RefreshToken, 0).Err(); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.Client.Del(ctx, AccessTokenKey, RefreshTokenKey).Err(); err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store used in tests and ephemeral sessions.
type MemoryStore struct {
	mu   sync.Mutex
	pair models.TokenPair
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (models.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair, nil
}

func (s *MemoryStore) Save(ctx context.Context, pair models.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = models.TokenPair{}
	return nil
}
