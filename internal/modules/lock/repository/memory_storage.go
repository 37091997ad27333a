package repository

import (
	"context"
	"sync"

	"github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	"github.com/samber/lo"
)

// MemoryStorage keeps snapshots for the lifetime of the process only.
type MemoryStorage struct {
	mu    sync.RWMutex
	locks map[int64]domain.LockConfig
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{locks: make(map[int64]domain.LockConfig)}
}

func (s *MemoryStorage) SaveLocks(ctx context.Context, cfg domain.LockConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locks[cfg.ChatID] = cfg.Clone()
	return nil
}

func (s *MemoryStorage) GetAllLocks(ctx context.Context) ([]domain.LockConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.MapToSlice(s.locks, func(_ int64, cfg domain.LockConfig) domain.LockConfig {
		return cfg.Clone()
	}), nil
}
