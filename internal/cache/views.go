package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Config struct {
	Addr     string `yaml:"addr" envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `yaml:"password" envconfig:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" envconfig:"REDIS_DB" default:"0"`
}

const viewKeyPrefix = "listing:views:"

// Views buffers listing view counts in Redis; pending deltas are folded
// into the listings table by the periodic flusher.
type Views struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewViews(cfg Config, log *zap.Logger) *Views {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Views{
		rdb: rdb,
		log: log.Named("views"),
	}
}

func (v *Views) Incr(ctx context.Context, listingUid string) error {
	return v.rdb.Incr(ctx, viewKeyPrefix+listingUid).Err()
}

func (v *Views) Pending(ctx context.Context, listingUid string) int64 {
	n, err := v.rdb.Get(ctx, viewKeyPrefix+listingUid).Int64()
	if err != nil {
		return 0
	}
	return n
}

// Drain atomically collects and resets all pending view deltas.
func (v *Views) Drain(ctx context.Context) (map[string]int64, error) {
	deltas := make(map[string]int64)
	iter := v.rdb.Scan(ctx, 0, viewKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		val, err := v.rdb.GetDel(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return deltas, err
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			v.log.Warn("bad view counter", zap.String("key", key), zap.String("val", val))
			continue
		}
		deltas[strings.TrimPrefix(key, viewKeyPrefix)] = n
	}
	if err := iter.Err(); err != nil {
		return deltas, err
	}
	return deltas, nil
}

func (v *Views) Close() error {
	return v.rdb.Close()
}
