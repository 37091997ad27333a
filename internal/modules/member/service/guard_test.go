package service

import (
	"context"
	"testing"
	"time"

	"github.com/reshetovitsme/group-guard-bot/internal/modules/chat/store"
	lockDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	moderationDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/domain"
	moderationService "github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/service"
	permissionService "github.com/reshetovitsme/group-guard-bot/internal/modules/permission/service"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/platform/platformtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chatID int64 = -1001

var self = &moderationService.Identity{ID: 99, Username: "guard_bot"}

func newGuard(t *testing.T) (*Guard, *store.Store, *platformtest.Client) {
	t.Helper()
	client := platformtest.New()
	client.SetAdmins(chatID, 10)
	st := store.New(time.Minute, 10)
	gate := permissionService.New(st, client)
	actions := moderationService.New(client, gate, self)
	return New(st, actions, client, self), st, client
}

func TestHandleJoinKicksBotsWhenLocked(t *testing.T) {
	guard, st, client := newGuard(t)
	st.SetLock(chatID, lockDomain.CategoryBots, true)

	removed := guard.HandleJoin(context.Background(), chatID, []moderationDomain.Member{
		{ID: 55, Name: "@spam_bot", IsBot: true},
	})

	assert.Equal(t, 1, removed)
	bans := client.CallsTo(platformtest.MethodBanUser)
	require.Len(t, bans, 1)
	assert.Equal(t, int64(55), bans[0].UserID)
	assert.Len(t, client.CallsTo(platformtest.MethodUnbanUser), 1)
	assert.Equal(t, []string{"🤖 Bot @spam_bot was removed: bots are locked in this chat."}, client.Messages(chatID))
}

func TestHandleJoinIgnoresHumansAndItself(t *testing.T) {
	guard, st, client := newGuard(t)
	st.SetLock(chatID, lockDomain.CategoryBots, true)

	removed := guard.HandleJoin(context.Background(), chatID, []moderationDomain.Member{
		{ID: 20, Name: "@bob"},
		{ID: self.ID, Name: "@guard_bot", IsBot: true},
	})

	assert.Zero(t, removed)
	assert.Empty(t, client.Calls())
}

func TestHandleJoinDoesNothingWhenUnlocked(t *testing.T) {
	guard, _, client := newGuard(t)

	removed := guard.HandleJoin(context.Background(), chatID, []moderationDomain.Member{
		{ID: 55, Name: "@spam_bot", IsBot: true},
	})

	assert.Zero(t, removed)
	assert.Empty(t, client.Calls())
}

func TestHandleJoinReportsFailures(t *testing.T) {
	guard, st, client := newGuard(t)
	st.SetLock(chatID, lockDomain.CategoryAll, true)
	client.Fail(platformtest.MethodBanUser, nil)

	removed := guard.HandleJoin(context.Background(), chatID, []moderationDomain.Member{
		{ID: 55, Name: "@spam_bot", IsBot: true},
	})

	assert.Zero(t, removed)
	messages := client.Messages(chatID)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Could not remove bot @spam_bot")
}
