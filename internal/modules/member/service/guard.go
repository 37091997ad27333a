package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reshetovitsme/group-guard-bot/internal/modules/chat/store"
	lockDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	moderationDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/domain"
	moderationService "github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/service"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/platform"
)

// Guard removes automated accounts that join while the bots lock is on.
type Guard struct {
	store   *store.Store
	actions *moderationService.Actions
	client  platform.Client
	self    *moderationService.Identity
}

// New creates a new member guard
func New(store *store.Store, actions *moderationService.Actions, client platform.Client, self *moderationService.Identity) *Guard {
	return &Guard{
		store:   store,
		actions: actions,
		client:  client,
		self:    self,
	}
}

// HandleJoin kicks every joining bot account when bots are locked. It
// returns the number of members removed.
func (g *Guard) HandleJoin(ctx context.Context, chatID int64, joined []moderationDomain.Member) int {
	if !g.store.GetLockConfig(chatID).IsLocked(lockDomain.CategoryBots) {
		return 0
	}

	removed := 0
	for _, member := range joined {
		if !member.IsBot || (g.self != nil && member.ID == g.self.ID) {
			continue
		}

		if err := g.actions.AutoKick(ctx, chatID, member); err != nil {
			slog.Warn("Failed to remove joining bot", "chat_id", chatID, "user_id", member.ID, "error", err)
			g.post(ctx, chatID, fmt.Sprintf("⚠️ Could not remove bot %s: %v", member.Display(), err))
			continue
		}

		removed++
		slog.Info("Removed joining bot", "chat_id", chatID, "user_id", member.ID)
		g.post(ctx, chatID, fmt.Sprintf("🤖 Bot %s was removed: bots are locked in this chat.", member.Display()))
	}
	return removed
}

func (g *Guard) post(ctx context.Context, chatID int64, text string) {
	if err := g.client.SendMessage(ctx, chatID, text); err != nil {
		slog.Warn("Failed to post member notice", "chat_id", chatID, "error", err)
	}
}
