package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements Repository with one JSON file per chat
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based lock repository
func NewFileStorage(basePath string) (*FileStorage, error) {
	locksPath := filepath.Join(basePath, "locks")
	if err := os.MkdirAll(locksPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create locks directory").Wrap(err)
	}

	return &FileStorage{basePath: locksPath}, nil
}

func (s *FileStorage) path(chatID int64) string {
	return filepath.Join(s.basePath, fmt.Sprintf("%d.json", chatID))
}

func (s *FileStorage) SaveLocks(ctx context.Context, cfg domain.LockConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return oops.With("chat_id", cfg.ChatID, "context", "failed to marshal locks").Wrap(err)
	}

	// Replace the snapshot atomically.
	tmp := s.path(cfg.ChatID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return oops.With("chat_id", cfg.ChatID, "context", "failed to write locks").Wrap(err)
	}
	if err := os.Rename(tmp, s.path(cfg.ChatID)); err != nil {
		return oops.With("chat_id", cfg.ChatID, "context", "failed to replace locks").Wrap(err)
	}
	return nil
}

func (s *FileStorage) GetAllLocks(ctx context.Context) ([]domain.LockConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, oops.With("directory", s.basePath, "context", "failed to read locks directory").Wrap(err)
	}

	configs := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (domain.LockConfig, bool) {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			return domain.LockConfig{}, false
		}

		data, err := os.ReadFile(filepath.Join(s.basePath, entry.Name()))
		if err != nil {
			return domain.LockConfig{}, false
		}

		var cfg domain.LockConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return domain.LockConfig{}, false
		}

		return cfg, true
	})

	return configs, nil
}
