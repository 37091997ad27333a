package repository

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(chatID int64, categories ...domain.Category) domain.LockConfig {
	cfg := domain.NewLockConfig(chatID)
	for _, cat := range categories {
		cfg.Set(cat, true)
	}
	cfg.UpdatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return cfg
}

// testRepository runs the behaviour every backend shares.
func testRepository(t *testing.T, repo Repository) {
	ctx := context.Background()

	all, err := repo.GetAllLocks(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.SaveLocks(ctx, snapshot(1, domain.CategoryLinks)))
	require.NoError(t, repo.SaveLocks(ctx, snapshot(-1002, domain.CategoryAll)))
	require.NoError(t, repo.SaveLocks(ctx, snapshot(1, domain.CategoryLinks, domain.CategoryMedia)))

	// The second save of chat 1 replaced the first.
	all, err = repo.GetAllLocks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	sort.Slice(all, func(i, j int) bool { return all[i].ChatID < all[j].ChatID })
	assert.Equal(t, int64(-1002), all[0].ChatID)
	assert.Equal(t, domain.Lockable, all[0].Categories)
	assert.Equal(t, snapshot(1, domain.CategoryLinks, domain.CategoryMedia), all[1])
}

func TestMemoryStorage(t *testing.T) {
	testRepository(t, NewMemoryStorage())
}

func TestFileStorage(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileStorage(dir)
	require.NoError(t, err)

	testRepository(t, repo)

	_, err = os.Stat(filepath.Join(dir, "locks", "-1002.json"))
	assert.NoError(t, err)
}

func TestFileStorageSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileStorage(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locks", "broken.json"), []byte("{"), 0644))
	require.NoError(t, repo.SaveLocks(context.Background(), snapshot(5, domain.CategoryBots)))

	all, err := repo.GetAllLocks(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(5), all[0].ChatID)
}

func TestRedisStorage(t *testing.T) {
	server := miniredis.RunT(t)
	repo, err := NewRedisStorage("redis://" + server.Addr() + "/0")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	testRepository(t, repo)
	assert.True(t, server.Exists(redisLocksKey))
}

func TestRedisStorageUnreachable(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err := NewRedisStorage("redis://" + addr + "/0")
	assert.Error(t, err)
}
