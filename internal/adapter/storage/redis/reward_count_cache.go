package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// RewardCountCache implements ports.RewardCountCache using Redis.
// It holds per-user pending-reward counts; writers invalidate after every
// issuance or redemption commit, so a stale entry lives at most one TTL.
type RewardCountCache struct {
	client *goredis.Client
	prefix string
}

// NewRewardCountCache creates a new Redis-backed pending-count cache.
func NewRewardCountCache(client *goredis.Client) *RewardCountCache {
	return &RewardCountCache{
		client: client,
		prefix: "rewardcount:",
	}
}

// Get retrieves a cached pending count. The second return reports a cache hit.
func (c *RewardCountCache) Get(ctx context.Context, userID uuid.UUID) (int64, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+userID.String()).Result()
	if err != nil {
		if err == goredis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis reward count get: %w", err)
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("redis reward count parse: %w", err)
	}
	return count, true, nil
}

// Set stores a pending count with TTL.
func (c *RewardCountCache) Set(ctx context.Context, userID uuid.UUID, count int64, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+userID.String(), count, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis reward count set: %w", err)
	}
	return nil
}

// Invalidate drops the cached count for a user.
func (c *RewardCountCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	err := c.client.Del(ctx, c.prefix+userID.String()).Err()
	if err != nil {
		return fmt.Errorf("redis reward count invalidate: %w", err)
	}
	return nil
}
