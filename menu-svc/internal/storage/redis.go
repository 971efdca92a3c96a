package storage

import (
	"context"
	"strconv"
	"strings"
	"time"

	"desi-beats/menu-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) SessionKey(sessionID string) string {
	return "session:admin:" + sessionID
}

func (s *RedisSessionStore) Create(ctx context.Context, sessionID string, ttl time.Duration) error {
	return s.Client.Set(ctx, s.SessionKey(sessionID), "1", ttl).Err()
}

func (s *RedisSessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	res, err := s.Client.Exists(ctx, s.SessionKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, s.SessionKey(sessionID)).Err()
}

// RedisStats reads the daily hashes maintained by stats-svc.
type RedisStats struct {
	Client *redis.Client
}

func NewRedisStats(client *redis.Client) *RedisStats {
	return &RedisStats{Client: client}
}

func DailyStatsKey(date string) string {
	return "stats:daily:" + date
}

func (s *RedisStats) DailyStats(ctx context.Context, date string) (*domain.DailyStats, error) {
	fields, err := s.Client.HGetAll(ctx, DailyStatsKey(date)).Result()
	if err != nil {
		return nil, err
	}

	stats := &domain.DailyStats{Date: date, Statuses: map[string]int64{}}
	for field, raw := range fields {
		switch {
		case field == "orders":
			stats.Orders, _ = strconv.ParseInt(raw, 10, 64)
		case field == "revenue":
			stats.Revenue, _ = strconv.ParseFloat(raw, 64)
		case field == "delivery":
			stats.Delivery, _ = strconv.ParseInt(raw, 10, 64)
		case field == "pickup":
			stats.Pickup, _ = strconv.ParseInt(raw, 10, 64)
		case strings.HasPrefix(field, "status:"):
			n, _ := strconv.ParseInt(raw, 10, 64)
			stats.Statuses[strings.TrimPrefix(field, "status:")] = n
		}
	}
	return stats, nil
}
