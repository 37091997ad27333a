package di

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/group-guard-bot/internal/modules/chat/store"
	commandService "github.com/reshetovitsme/group-guard-bot/internal/modules/command/service"
	lockRepo "github.com/reshetovitsme/group-guard-bot/internal/modules/lock/repository"
	lockService "github.com/reshetovitsme/group-guard-bot/internal/modules/lock/service"
	memberService "github.com/reshetovitsme/group-guard-bot/internal/modules/member/service"
	moderationService "github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/service"
	permissionService "github.com/reshetovitsme/group-guard-bot/internal/modules/permission/service"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/config"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/worker"
	httpServer "github.com/reshetovitsme/group-guard-bot/internal/transport/http"
	"github.com/reshetovitsme/group-guard-bot/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Lock Repository
	do.Provide(injector, func(i do.Injector) (lockRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		switch cfg.StorageBackend {
		case config.StorageBackendMemory:
			return lockRepo.NewMemoryStorage(), nil
		case config.StorageBackendRedis:
			repo, err := lockRepo.NewRedisStorage(cfg.RedisURL)
			if err != nil {
				return nil, oops.With("context", "failed to initialize redis lock repository").Wrap(err)
			}
			return repo, nil
		default:
			repo, err := lockRepo.NewFileStorage(cfg.StoragePath)
			if err != nil {
				return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize lock repository").Wrap(err)
			}
			return repo, nil
		}
	})

	// Register Chat State Store
	do.Provide(injector, func(i do.Injector) (*store.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return store.New(cfg.AdminCacheTTLDuration(), cfg.AdminCacheSize), nil
	})

	// Register Telegram Client (the bot is attached once it exists)
	do.Provide(injector, func(i do.Injector) (*telegram.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return telegram.NewClient(cfg.RequestTimeoutDuration()), nil
	})

	// Register Bot Identity (filled from getMe when the bot is created)
	do.Provide(injector, func(i do.Injector) (*moderationService.Identity, error) {
		return &moderationService.Identity{}, nil
	})

	// Register Permission Gate
	do.Provide(injector, func(i do.Injector) (*permissionService.Gate, error) {
		st := do.MustInvoke[*store.Store](i)
		client := do.MustInvoke[*telegram.Client](i)
		return permissionService.New(st, client), nil
	})

	// Register Moderation Actions
	do.Provide(injector, func(i do.Injector) (*moderationService.Actions, error) {
		client := do.MustInvoke[*telegram.Client](i)
		gate := do.MustInvoke[*permissionService.Gate](i)
		self := do.MustInvoke[*moderationService.Identity](i)
		return moderationService.New(client, gate, self), nil
	})

	// Register Lock Persister
	do.Provide(injector, func(i do.Injector) (*lockService.Persister, error) {
		repo := do.MustInvoke[lockRepo.Repository](i)
		st := do.MustInvoke[*store.Store](i)
		return lockService.NewPersister(repo, st), nil
	})

	// Register Lock Enforcer
	do.Provide(injector, func(i do.Injector) (*lockService.Enforcer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		st := do.MustInvoke[*store.Store](i)
		gate := do.MustInvoke[*permissionService.Gate](i)
		client := do.MustInvoke[*telegram.Client](i)
		return lockService.NewEnforcer(st, gate, client, cfg.WarnIntervalDuration()), nil
	})

	// Register Member Guard
	do.Provide(injector, func(i do.Injector) (*memberService.Guard, error) {
		st := do.MustInvoke[*store.Store](i)
		actions := do.MustInvoke[*moderationService.Actions](i)
		client := do.MustInvoke[*telegram.Client](i)
		self := do.MustInvoke[*moderationService.Identity](i)
		return memberService.New(st, actions, client, self), nil
	})

	// Register Command Dispatcher
	do.Provide(injector, func(i do.Injector) (*commandService.Dispatcher, error) {
		return commandService.New(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*store.Store](i),
			do.MustInvoke[*permissionService.Gate](i),
			do.MustInvoke[*moderationService.Actions](i),
			do.MustInvoke[*lockService.Persister](i),
			do.MustInvoke[*telegram.Client](i),
			do.MustInvoke[*moderationService.Identity](i),
		), nil
	})

	// Register Worker Pool
	do.Provide(injector, func(i do.Injector) (*worker.Pool, error) {
		cfg := do.MustInvoke[*config.Config](i)
		// Each task may issue a few platform calls in sequence.
		return worker.New(cfg.Workers, cfg.QueueSize, 3*cfg.RequestTimeoutDuration()), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegram.Handler, error) {
		return telegram.New(
			do.MustInvoke[*worker.Pool](i),
			do.MustInvoke[*lockService.Enforcer](i),
			do.MustInvoke[*memberService.Guard](i),
			do.MustInvoke[*permissionService.Gate](i),
			do.MustInvoke[*commandService.Dispatcher](i),
		), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		st := do.MustInvoke[*store.Store](i)
		server := httpServer.New(cfg, st)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// Register Bot (needs to be initialized after handlers are ready)
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		telegramHandler := do.MustInvoke[*telegram.Handler](i)

		opts := []bot.Option{
			bot.WithDefaultHandler(telegramHandler.HandleUpdate),
			bot.WithServerURL(cfg.TelegramAPIURL),
			bot.WithAllowedUpdates(bot.AllowedUpdates{"message", "edited_message", "chat_member"}),
			bot.WithErrorsHandler(func(err error) {
				slog.Error("Telegram polling error", "error", err)
			}),
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		me, err := b.GetMe(context.Background())
		if err != nil {
			return nil, oops.With("context", "failed to fetch bot identity").Wrap(err)
		}
		self := do.MustInvoke[*moderationService.Identity](i)
		self.ID, self.Username = me.ID, me.Username

		// Register bot commands
		telegramHandler.RegisterCommands(b)

		// Set bot in platform client
		client := do.MustInvoke[*telegram.Client](i)
		client.SetBot(b)

		return b, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	if pool, err := do.Invoke[*worker.Pool](injector); err == nil && pool != nil {
		pool.Stop()
	}

	if repo, err := do.Invoke[lockRepo.Repository](injector); err == nil {
		if closer, ok := repo.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				return oops.With("context", "failed to close lock repository").Wrap(err)
			}
		}
	}

	return nil
}
