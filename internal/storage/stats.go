package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"aroma-storefront/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	DateLayout       = "2006-01-02"
	DefaultStatsTTL  = 30 * 24 * time.Hour
	fieldSubmitted   = "orders_submitted"
	fieldFailed      = "orders_failed"
	fieldFallbacks   = "menu_fallbacks"
	fieldRevenueCent = "revenue_cents"
)

// RedisStats keeps one hash of counters per day.
type RedisStats struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStats(client *redis.Client) *RedisStats {
	return &RedisStats{Client: client, TTL: DefaultStatsTTL}
}

func (s *RedisStats) StatsKey(day time.Time) string {
	return "storefront:stats:" + day.UTC().Format(DateLayout)
}

// Apply counts one event. Unknown event types are ignored.
func (s *RedisStats) Apply(ctx context.Context, event domain.StorefrontEvent) error {
	key := s.StatsKey(event.Timestamp)

	pipe := s.Client.TxPipeline()
	switch event.Type {
	case domain.EventOrderSubmitted:
		pipe.HIncrBy(ctx, key, fieldSubmitted, 1)
		if event.Total != "" {
			total, err := decimal.NewFromString(event.Total)
			if err != nil {
				return fmt.Errorf("failed to parse order total %q: %w", event.Total, err)
			}
			pipe.HIncrBy(ctx, key, fieldRevenueCent, total.Shift(2).Round(0).IntPart())
		}
	case domain.EventOrderFailed:
		pipe.HIncrBy(ctx, key, fieldFailed, 1)
	case domain.EventMenuFallback:
		pipe.HIncrBy(ctx, key, fieldFallbacks, 1)
	default:
		return nil
	}
	pipe.Expire(ctx, key, s.TTL)

	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStats) Daily(ctx context.Context, day time.Time) (domain.DailyStats, error) {
	stats := domain.DailyStats{Date: day.UTC().Format(DateLayout), Revenue: "0.00"}

	values, err := s.Client.HGetAll(ctx, s.StatsKey(day)).Result()
	if err != nil {
		return stats, err
	}

	counter := func(field string) int64 {
		n, _ := strconv.ParseInt(values[field], 10, 64)
		return n
	}
	stats.OrdersSubmitted = counter(fieldSubmitted)
	stats.OrdersFailed = counter(fieldFailed)
	stats.MenuFallbacks = counter(fieldFallbacks)
	stats.Revenue = decimal.New(counter(fieldRevenueCent), -2).StringFixed(2)
	return stats, nil
}
