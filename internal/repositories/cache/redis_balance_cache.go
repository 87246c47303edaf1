package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/fairsplit/fairsplit/internal/core/domain"
	portsrepo "github.com/fairsplit/fairsplit/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// RedisBalanceCache caches computed group balance reports in Redis. Every
// failure degrades to a miss; callers always have the replay path.
type RedisBalanceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisBalanceCache(client *redis.Client, ttl time.Duration) portsrepo.BalanceCache {
	return &RedisBalanceCache{client: client, ttl: ttl}
}

var _ portsrepo.BalanceCache = (*RedisBalanceCache)(nil)

func balanceKey(groupID string) string {
	return "fairsplit:balances:" + groupID
}

func (c *RedisBalanceCache) GetGroupBalances(ctx context.Context, groupID string) ([]domain.Balance, bool) {
	raw, err := c.client.Get(ctx, balanceKey(groupID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.WarnContext(ctx, "balance cache read failed", slog.String("group_id", groupID), slog.String("error", err.Error()))
		}
		return nil, false
	}

	var balances []domain.Balance
	if err := json.Unmarshal(raw, &balances); err != nil {
		slog.WarnContext(ctx, "balance cache entry corrupt, dropping", slog.String("group_id", groupID), slog.String("error", err.Error()))
		c.client.Del(ctx, balanceKey(groupID))
		return nil, false
	}
	return balances, true
}

func (c *RedisBalanceCache) SetGroupBalances(ctx context.Context, groupID string, balances []domain.Balance) {
	raw, err := json.Marshal(balances)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, balanceKey(groupID), raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "balance cache write failed", slog.String("group_id", groupID), slog.String("error", err.Error()))
	}
}

func (c *RedisBalanceCache) InvalidateGroup(ctx context.Context, groupID string) {
	if err := c.client.Del(ctx, balanceKey(groupID)).Err(); err != nil {
		slog.WarnContext(ctx, "balance cache invalidation failed", slog.String("group_id", groupID), slog.String("error", err.Error()))
	}
}
