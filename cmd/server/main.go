package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/group-guard-bot/internal/di"
	lockService "github.com/reshetovitsme/group-guard-bot/internal/modules/lock/service"
	moderationService "github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/service"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/config"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/worker"
	httpServer "github.com/reshetovitsme/group-guard-bot/internal/transport/http"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup structured logging with multiple handlers using slog-multi
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	logger := slog.New(slogmulti.Fanout(textHandler, jsonHandler)).With("env", cfg.AppEnv)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, injector); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, injector do.Injector) error {
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	// Get services from DI container
	persister, err := do.Invoke[*lockService.Persister](injector)
	if err != nil {
		return err
	}
	if err := persister.Load(ctx); err != nil {
		return err
	}

	b, err := do.Invoke[*bot.Bot](injector)
	if err != nil {
		return err
	}
	self := do.MustInvoke[*moderationService.Identity](injector)
	pool := do.MustInvoke[*worker.Pool](injector)
	server := do.MustInvoke[*httpServer.Server](injector)

	pool.Start()

	slog.Info("Application started", "bot_id", self.ID, "bot_username", self.Username)
	slog.Info("Press Ctrl+C to stop")

	// The HTTP server and the poller stop together: a failing server
	// cancels polling and a cancelled context stops the server.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		// Start blocks until gCtx is cancelled
		b.Start(gCtx)
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
