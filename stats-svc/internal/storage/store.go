package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// statsTTL keeps a month of daily hashes around for the dashboard.
const statsTTL = 30 * 24 * time.Hour

// RedisStatsStore maintains the stats:daily:{date} hashes read by menu-svc.
type RedisStatsStore struct {
	rdb *redis.Client
}

func NewRedisStatsStore(rdb *redis.Client) *RedisStatsStore {
	return &RedisStatsStore{rdb: rdb}
}

func DailyKey(date string) string {
	return "stats:daily:" + date
}

func (s *RedisStatsStore) RecordOrderCreated(ctx context.Context, date, deliveryType string, total float64) error {
	key := DailyKey(date)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, "orders", 1)
		pipe.HIncrByFloat(ctx, key, "revenue", total)
		if deliveryType == "delivery" || deliveryType == "pickup" {
			pipe.HIncrBy(ctx, key, deliveryType, 1)
		}
		pipe.Expire(ctx, key, statsTTL)
		return nil
	})
	return err
}

func (s *RedisStatsStore) RecordStatusChange(ctx context.Context, date, status string) error {
	key := DailyKey(date)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, "status:"+status, 1)
		pipe.Expire(ctx, key, statsTTL)
		return nil
	})
	return err
}
