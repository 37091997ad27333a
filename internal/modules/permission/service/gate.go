package service

import (
	"context"
	"log/slog"

	"github.com/reshetovitsme/group-guard-bot/internal/modules/chat/store"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/errors"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/metrics"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/platform"
	"github.com/samber/lo"
)

// Gate decides who may issue moderation commands and who is exempt from
// content locks. Both questions are answered from the chat's administrator
// list, which is refetched whenever the cached copy is missing or stale.
type Gate struct {
	store  *store.Store
	client platform.Client
}

// New creates a new permission gate
func New(store *store.Store, client platform.Client) *Gate {
	return &Gate{
		store:  store,
		client: client,
	}
}

// IsAuthorized reports whether userID administers or owns chatID. Any
// failure to learn the administrator list denies authorization.
func (g *Gate) IsAuthorized(ctx context.Context, chatID, userID int64) (bool, error) {
	admins, err := g.admins(ctx, chatID)
	if err != nil {
		return false, err
	}
	return admins.Contains(userID), nil
}

// IsExempt reports whether userID is immune to content locks in chatID.
func (g *Gate) IsExempt(ctx context.Context, chatID, userID int64) (bool, error) {
	return g.IsAuthorized(ctx, chatID, userID)
}

// Authorize is IsAuthorized folded into a single error: a PermissionError
// for non-admins, a PlatformError when the list could not be fetched.
func (g *Gate) Authorize(ctx context.Context, chatID, userID int64) error {
	ok, err := g.IsAuthorized(ctx, chatID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Permission("Only chat administrators can use this command.")
	}
	return nil
}

// Invalidate forgets the cached administrator list of chatID.
func (g *Gate) Invalidate(chatID int64) {
	g.store.InvalidateAdminCache(chatID)
}

func (g *Gate) admins(ctx context.Context, chatID int64) (store.AdminCache, error) {
	if cached, ok := g.store.GetAdminCache(chatID); ok {
		return cached, nil
	}

	admins, err := g.client.GetChatAdministrators(ctx, chatID)
	if err != nil {
		metrics.AdminListFetches.WithLabelValues("error").Inc()
		slog.Warn("Failed to fetch chat administrators", "chat_id", chatID, "error", err)
		return store.AdminCache{}, errors.Platform(err, "Fetching the chat administrators")
	}
	metrics.AdminListFetches.WithLabelValues("ok").Inc()

	members := admins.AdminIDs
	if admins.OwnerID != 0 {
		members = append(members, admins.OwnerID)
	}
	return g.store.PutAdminCache(chatID, lo.Uniq(members)), nil
}
