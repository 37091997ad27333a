package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	"github.com/samber/oops"
)

const redisLocksKey = "groupguard/locks"

// RedisStorage keeps every chat's snapshot as a field of one redis hash.
type RedisStorage struct {
	Client *redis.Client
}

// NewRedisStorage connects to redisURL and checks the connection.
func NewRedisStorage(redisURL string) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, oops.With("context", "failed to parse redis url").Wrap(err)
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	if _, err := rdb.Ping(context.TODO()).Result(); err != nil {
		return nil, oops.With("addr", opt.Addr, "context", "failed to connect to redis").Wrap(err)
	}
	return &RedisStorage{Client: rdb}, nil
}

func (s *RedisStorage) SaveLocks(ctx context.Context, cfg domain.LockConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return oops.With("chat_id", cfg.ChatID, "context", "failed to marshal locks").Wrap(err)
	}
	field := strconv.FormatInt(cfg.ChatID, 10)
	if err := s.Client.HSet(ctx, redisLocksKey, field, data).Err(); err != nil {
		return oops.With("chat_id", cfg.ChatID, "context", "failed to store locks").Wrap(err)
	}
	return nil
}

func (s *RedisStorage) GetAllLocks(ctx context.Context) ([]domain.LockConfig, error) {
	all, err := s.Client.HGetAll(ctx, redisLocksKey).Result()
	if err != nil {
		return nil, oops.With("context", "failed to load all locks").Wrap(err)
	}

	configs := make([]domain.LockConfig, 0, len(all))
	for field, raw := range all {
		var cfg domain.LockConfig
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			return nil, oops.With("field", field, "context", "failed to unmarshal locks").Wrap(err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func (s *RedisStorage) Close() error {
	return s.Client.Close()
}
