package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisSessionKey = "musicmustard:session:%s"

// RedisStore is a SessionStore which keeps sessions as JSON values in Redis.
// Every key expires `ttl` after the session was last saved. Useful when more than
// one server process serves the same users.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore returns a RedisStore which uses `client`. Non-positive `ttl` means
// DefaultSessionTTL.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// Get implements SessionStore.
func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, fmt.Sprintf(redisSessionKey, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting session from redis: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", id, err)
	}

	return &session, nil
}

// Save implements SessionStore.
func (r *RedisStore) Save(ctx context.Context, session *Session) error {
	if session == nil || session.ID == "" {
		return errors.New("cannot save a session without an ID")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", session.ID, err)
	}

	key := fmt.Sprintf(redisSessionKey, session.ID)
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("saving session to redis: %w", err)
	}

	return nil
}

// Delete implements SessionStore.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, fmt.Sprintf(redisSessionKey, id)).Err(); err != nil {
		return fmt.Errorf("deleting session from redis: %w", err)
	}

	return nil
}

// Ping checks that the Redis server is reachable.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
