package repository

import (
	"context"

	"github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
)

// Repository persists per-chat lock snapshots so they survive restarts.
// Implementations: MemoryStorage, FileStorage, RedisStorage.
type Repository interface {
	SaveLocks(ctx context.Context, cfg domain.LockConfig) error
	GetAllLocks(ctx context.Context) ([]domain.LockConfig, error)
}
