package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ippt-coach/internal/domain"
)

const defaultRedisPrefix = "ippt:session:"

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// Prefix is the key prefix for session keys (default: "ippt:session:").
	Prefix     string
	SessionTTL time.Duration
}

// RedisStore keeps each session as one JSON string with a key expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if cfg.Addr == "" {
		return nil, errors.New("repository: redis address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("repository: redis ping: %w", err)
	}
	return NewRedisStoreFromClient(client, cfg.Prefix, cfg.SessionTTL), nil
}

// NewRedisStoreFromClient wraps an existing client. A non-positive ttl uses DefaultSessionTTL.
func NewRedisStoreFromClient(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

// Load returns the stored session, or a zero session when the key is absent or expired.
func (r *RedisStore) Load(ctx context.Context, sessionID string) (domain.Session, error) {
	data, err := r.client.Get(ctx, r.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, nil
		}
		return domain.Session{}, fmt.Errorf("repository: redis get: %w", err)
	}
	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.Session{}, fmt.Errorf("repository: redis decode state: %w", err)
	}
	return s, nil
}

// Save writes the session and resets its expiry.
func (r *RedisStore) Save(ctx context.Context, sessionID string, s domain.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("repository: redis encode state: %w", err)
	}
	if err := r.client.Set(ctx, r.key(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("repository: redis set: %w", err)
	}
	return nil
}

// Delete removes the session key.
func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("repository: redis del: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
