package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps every document under users:<uid>:data:<name>, mirroring
// the hosted per-user document layout. It is the server's default backend.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to addr and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cannot reach redis at %s: %w", addr, err)
	}
	return &RedisStore{rdb: rdb}, nil
}

func key(user, name string) string {
	return fmt.Sprintf("users:%s:data:%s", user, name)
}

// Load reads a document, reporting ok=false when the key does not exist.
func (r *RedisStore) Load(ctx context.Context, user, name string) ([]byte, bool, error) {
	doc, err := r.rdb.Get(ctx, key(user, name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot load %s: %w", key(user, name), err)
	}
	return doc, true, nil
}

// Save overwrites a document. Documents never expire.
func (r *RedisStore) Save(ctx context.Context, user, name string, doc []byte) error {
	if err := r.rdb.Set(ctx, key(user, name), doc, 0).Err(); err != nil {
		return fmt.Errorf("cannot save %s: %w", key(user, name), err)
	}
	return nil
}

// Close releases the underlying client.
func (r *RedisStore) Close() error { return r.rdb.Close() }
