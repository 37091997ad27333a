package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/reshetovitsme/group-guard-bot/internal/modules/chat/store"
	"github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	permissionService "github.com/reshetovitsme/group-guard-bot/internal/modules/permission/service"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/errors"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/metrics"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/platform"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

// Enforcer applies the chat's content locks to incoming messages.
type Enforcer struct {
	store    *store.Store
	gate     *permissionService.Gate
	client   platform.Client
	warnings *xsync.MapOf[int64, *rate.Limiter]
	warnGap  time.Duration
}

// NewEnforcer creates a lock enforcer. At most one warning notice is posted
// per chat every warnGap; zero disables warnings.
func NewEnforcer(store *store.Store, gate *permissionService.Gate, client platform.Client, warnGap time.Duration) *Enforcer {
	return &Enforcer{
		store:    store,
		gate:     gate,
		client:   client,
		warnings: xsync.NewMapOf[int64, *rate.Limiter](),
		warnGap:  warnGap,
	}
}

// Handle evaluates one message and deletes it when a locked category
// matches. Exemption is only looked up when some matched category is locked.
func (e *Enforcer) Handle(ctx context.Context, event domain.ContentEvent) (domain.Verdict, error) {
	cfg := e.store.GetLockConfig(event.ChatID)

	locked := lo.Filter(Guarded(event), func(cat domain.Category, _ int) bool {
		return cfg.IsLocked(cat)
	})
	if len(locked) == 0 {
		metrics.LockDispositions.WithLabelValues(domain.DispositionAllow.String(), "none").Inc()
		return domain.Verdict{Disposition: domain.DispositionAllow}, nil
	}

	verdict := Evaluate(event, cfg, e.isExempt(ctx, event))
	if verdict.Disposition == domain.DispositionAllow {
		metrics.LockDispositions.WithLabelValues(domain.DispositionAllow.String(), "exempt").Inc()
		return verdict, nil
	}
	for _, cat := range verdict.Matched {
		metrics.LockDispositions.WithLabelValues(domain.DispositionDelete.String(), cat.String()).Inc()
	}

	if err := e.client.DeleteMessage(ctx, event.ChatID, event.MessageID); err != nil {
		err = errors.Platform(err, "Deleting a message with locked content")
		slog.Warn("Failed to delete locked message", "chat_id", event.ChatID, "message_id", event.MessageID, "error", err)
		e.notify(ctx, event.ChatID, "⚠️ I could not delete a message with locked content. Make sure I am an administrator allowed to delete messages.")
		return verdict, err
	}

	e.notify(ctx, event.ChatID, fmt.Sprintf("🚫 %s, %s locked in this chat.", event.SenderName, describe(verdict.Matched)))
	return verdict, nil
}

// isExempt treats a failed administrator lookup as not exempt.
func (e *Enforcer) isExempt(ctx context.Context, event domain.ContentEvent) bool {
	if event.SentAsChat {
		return true
	}
	exempt, err := e.gate.IsExempt(ctx, event.ChatID, event.SenderID)
	if err != nil {
		slog.Warn("Exemption lookup failed, enforcing locks", "chat_id", event.ChatID, "user_id", event.SenderID, "error", err)
		return false
	}
	return exempt
}

func (e *Enforcer) notify(ctx context.Context, chatID int64, text string) {
	if e.warnGap <= 0 {
		return
	}
	limiter, _ := e.warnings.LoadOrCompute(chatID, func() *rate.Limiter {
		return rate.NewLimiter(rate.Every(e.warnGap), 1)
	})
	if !limiter.Allow() {
		return
	}
	if err := e.client.SendMessage(ctx, chatID, text); err != nil {
		slog.Warn("Failed to post lock notice", "chat_id", chatID, "error", err)
	}
}

func describe(categories []domain.Category) string {
	names := lo.Map(categories, func(cat domain.Category, _ int) string { return cat.String() })
	return strings.Join(names, " and ") + " are"
}
