package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reshetovitsme/group-guard-bot/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no config or .env
// file of the working tree is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadRequiresToken(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, err := Load()
	assert.ErrorIs(t, err, errors.ErrMissingBotToken)
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.TelegramBotToken)
	assert.Equal(t, AppEnvProduction, cfg.AppEnv)
	assert.Equal(t, StorageBackendFile, cfg.StorageBackend)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeoutDuration())
	assert.Equal(t, time.Minute, cfg.AdminCacheTTLDuration())
	assert.Equal(t, 16, cfg.Workers)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoadFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("OWNER_ID", "777")
	t.Setenv("OWNER_USERNAME", "@owner")
	t.Setenv("STORAGE_BACKEND", "REDIS")
	t.Setenv("ADMIN_CACHE_TTL", "0")
	t.Setenv("WARN_INTERVAL", "0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "nonsense")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(777), cfg.OwnerID)
	assert.Equal(t, "@owner", cfg.OwnerUsername)
	assert.Equal(t, StorageBackendRedis, cfg.StorageBackend)
	assert.Equal(t, time.Minute, cfg.AdminCacheTTLDuration())
	assert.Zero(t, cfg.WarnIntervalDuration())
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, AppEnvProduction, cfg.AppEnv)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("STORAGE_BACKEND", "postgres")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidStorageBackend)
}

func TestLoadConfigFileAndDotenv(t *testing.T) {
	dir := chdirTemp(t)
	// godotenv never overrides a variable that is set, even to "".
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	require.NoError(t, os.Unsetenv("TELEGRAM_BOT_TOKEN"))
	t.Setenv("HTTP_PORT", "9090")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("http_port: \"7070\"\nchannel_username: \"@news\"\nworkers: 4\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TELEGRAM_BOT_TOKEN=from-dotenv\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.TelegramBotToken)
	assert.Equal(t, "@news", cfg.ChannelUsername)
	assert.Equal(t, 4, cfg.Workers)
	// Environment variables override the file.
	assert.Equal(t, "9090", cfg.HTTPPort)
}
