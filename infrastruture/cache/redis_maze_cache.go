package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "labyrinth:maze:"

// ErrCacheMiss is returned when no cached record exists for an ID.
var ErrCacheMiss = errors.New("maze not in cache")

// RedisMazeCache stores serialized maze records in Redis with a TTL. Writes
// for one ID are guarded by a redsync mutex so concurrent refills of the
// same record do not race each other.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (i.MazeCache, error) {
	if client == nil {
		return nil, errors.New("maze cache requires a redis client")
	}
	mazeCache := &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	mazeCache.locker = redsync.New(pool)
	return mazeCache, nil
}

// Get returns the cached record for the ID, or ErrCacheMiss.
func (c *RedisMazeCache) Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	data, err := c.client.Get(ctx, keyPrefix+id.String()).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var record dmn.MazeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Set stores the record under its ID for the configured TTL.
func (c *RedisMazeCache) Set(ctx context.Context, record *dmn.MazeRecord) error {
	key := keyPrefix + record.ID.String()

	mutex := c.locker.NewMutex(key + ":fill_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}
