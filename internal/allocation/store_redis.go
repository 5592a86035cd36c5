package allocation

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"avsar/pkg/platform/sentinel"
)

const (
	remainingKeyPrefix = "alloc:rem:"
	capacityKeyPrefix  = "alloc:cap:"
	postingIndexKey    = "alloc:postings"
)

// Lua keeps check-and-decrement atomic on the Redis side, so concurrent
// reservations across instances contend on the server, not in Go.
var (
	reserveScript = redis.NewScript(`
local rem = redis.call('GET', KEYS[1])
if not rem then return -1 end
if tonumber(rem) > 0 then
	redis.call('DECR', KEYS[1])
	return 1
end
return 0`)

	releaseScript = redis.NewScript(`
local rem = redis.call('GET', KEYS[1])
local cap = redis.call('GET', KEYS[2])
if not rem or not cap then return -1 end
if tonumber(rem) >= tonumber(cap) then return -2 end
redis.call('INCR', KEYS[1])
return 1`)
)

// RedisStore is the distributed capacity store for multi-instance
// deployments. Counters live in Redis; all mutations go through Lua scripts.
type RedisStore struct {
	client redis.Cmdable
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Init(ctx context.Context, postingID string, capacity int) error {
	if err := s.client.SetNX(ctx, remainingKeyPrefix+postingID, capacity, 0).Err(); err != nil {
		return fmt.Errorf("init remaining counter: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	if err := s.client.SetNX(ctx, capacityKeyPrefix+postingID, capacity, 0).Err(); err != nil {
		return fmt.Errorf("init capacity: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	if err := s.client.SAdd(ctx, postingIndexKey, postingID).Err(); err != nil {
		return fmt.Errorf("index posting: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}

func (s *RedisStore) TryReserve(ctx context.Context, postingID string) (bool, error) {
	res, err := reserveScript.Run(ctx, s.client, []string{remainingKeyPrefix + postingID}).Int()
	if err != nil {
		return false, fmt.Errorf("reserve: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	switch res {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, sentinel.ErrNotFound
	}
}

func (s *RedisStore) Release(ctx context.Context, postingID string) error {
	keys := []string{remainingKeyPrefix + postingID, capacityKeyPrefix + postingID}
	res, err := releaseScript.Run(ctx, s.client, keys).Int()
	if err != nil {
		return fmt.Errorf("release: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	switch res {
	case 1:
		return nil
	case -2:
		return ErrReleaseOverflow
	default:
		return sentinel.ErrNotFound
	}
}

func (s *RedisStore) Remaining(ctx context.Context, postingID string) (int, error) {
	val, err := s.client.Get(ctx, remainingKeyPrefix+postingID).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, sentinel.ErrNotFound
		}
		return 0, fmt.Errorf("remaining: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return val, nil
}

func (s *RedisStore) Snapshot(ctx context.Context) (map[string]int, error) {
	ids, err := s.client.SMembers(ctx, postingIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("snapshot index: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	out := make(map[string]int, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = remainingKeyPrefix + id
	}
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("snapshot counters: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(str)
		if err != nil {
			continue
		}
		out[ids[i]] = n
	}
	return out, nil
}
