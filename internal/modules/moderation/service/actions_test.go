package service

import (
	"context"
	"testing"
	"time"

	"github.com/reshetovitsme/group-guard-bot/internal/modules/chat/store"
	"github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/domain"
	permissionService "github.com/reshetovitsme/group-guard-bot/internal/modules/permission/service"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/errors"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/platform"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/platform/platformtest"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	chatID  int64 = -1001
	ownerID int64 = 10
	adminID int64 = 11
	userID  int64 = 12
	botID   int64 = 99
)

func newActions(t *testing.T) (*Actions, *platformtest.Client) {
	t.Helper()
	client := platformtest.New()
	client.SetAdmins(chatID, ownerID, adminID, botID)
	gate := permissionService.New(store.New(time.Minute, 10), client)
	return New(client, gate, &Identity{ID: botID, Username: "guard_bot"}), client
}

func target(id int64) domain.Target {
	return domain.Target{Member: domain.Member{ID: id, Name: "@user"}, Resolution: domain.ResolutionArgument}
}

func methods(calls []platformtest.Call) []string {
	return lo.FilterMap(calls, func(c platformtest.Call, _ int) (string, bool) {
		return c.Method, c.Method == platformtest.MethodBanUser || c.Method == platformtest.MethodUnbanUser
	})
}

func TestKickBansThenUnbans(t *testing.T) {
	actions, client := newActions(t)

	require.NoError(t, actions.Kick(context.Background(), chatID, target(userID)))
	assert.Equal(t, []string{platformtest.MethodBanUser, platformtest.MethodUnbanUser}, methods(client.Calls()))
	assert.False(t, client.IsBanned(chatID, userID))
}

func TestKickReportsFailedUnban(t *testing.T) {
	actions, client := newActions(t)
	client.Fail(platformtest.MethodUnbanUser, nil)

	err := actions.Kick(context.Background(), chatID, target(userID))
	assert.ErrorIs(t, err, errors.ErrPlatform)
	assert.True(t, client.IsBanned(chatID, userID))
}

func TestActionsRefuseAdministrators(t *testing.T) {
	actions, client := newActions(t)
	ctx := context.Background()

	for _, id := range []int64{ownerID, adminID} {
		assert.ErrorIs(t, actions.Kick(ctx, chatID, target(id)), errors.ErrPermission)
		assert.ErrorIs(t, actions.Ban(ctx, chatID, target(id)), errors.ErrPermission)
		assert.ErrorIs(t, actions.Mute(ctx, chatID, target(id)), errors.ErrPermission)
	}
	assert.Empty(t, client.CallsTo(platformtest.MethodBanUser))
	assert.Empty(t, client.CallsTo(platformtest.MethodRestrictUser))
}

func TestActionsRefuseTheBotItself(t *testing.T) {
	actions, client := newActions(t)
	ctx := context.Background()
	self := target(botID)

	assert.ErrorIs(t, actions.Kick(ctx, chatID, self), errors.ErrPermission)
	assert.ErrorIs(t, actions.Ban(ctx, chatID, self), errors.ErrPermission)
	assert.ErrorIs(t, actions.Unban(ctx, chatID, self), errors.ErrPermission)
	assert.ErrorIs(t, actions.Mute(ctx, chatID, self), errors.ErrPermission)
	assert.ErrorIs(t, actions.Unmute(ctx, chatID, self), errors.ErrPermission)
	assert.ErrorIs(t, actions.AutoKick(ctx, chatID, self.Member), errors.ErrPermission)
	assert.Empty(t, client.CallsTo(platformtest.MethodBanUser))
}

func TestBanAndUnban(t *testing.T) {
	actions, client := newActions(t)
	ctx := context.Background()

	require.NoError(t, actions.Ban(ctx, chatID, target(userID)))
	assert.True(t, client.IsBanned(chatID, userID))

	require.NoError(t, actions.Unban(ctx, chatID, target(userID)))
	assert.False(t, client.IsBanned(chatID, userID))
}

func TestMuteAndUnmute(t *testing.T) {
	actions, client := newActions(t)
	ctx := context.Background()

	require.NoError(t, actions.Mute(ctx, chatID, target(userID)))
	require.NoError(t, actions.Unmute(ctx, chatID, target(userID)))

	calls := client.CallsTo(platformtest.MethodRestrictUser)
	require.Len(t, calls, 2)
	assert.Equal(t, platform.Muted(), calls[0].Perms)
	assert.True(t, calls[0].Until.IsZero())
	// Unmuting grants every right, otherwise Telegram keeps the member restricted.
	assert.Equal(t, platform.Permissions{
		CanSendMessages:       true,
		CanSendMedia:          true,
		CanSendPolls:          true,
		CanSendOtherMessages:  true,
		CanAddWebPagePreviews: true,
		CanChangeInfo:         true,
		CanInviteUsers:        true,
		CanPinMessages:        true,
		CanManageTopics:       true,
	}, calls[1].Perms)
	assert.True(t, calls[1].Until.IsZero())
}

func TestAutoKickSkipsAdminCheck(t *testing.T) {
	actions, client := newActions(t)

	require.NoError(t, actions.AutoKick(context.Background(), chatID, domain.Member{ID: 55, IsBot: true}))
	assert.Empty(t, client.CallsTo(platformtest.MethodGetAdmins))
	assert.Len(t, client.CallsTo(platformtest.MethodBanUser), 1)
}

func TestBanFailsWhenAdminListIsUnavailable(t *testing.T) {
	actions, client := newActions(t)
	client.Fail(platformtest.MethodGetAdmins, nil)

	err := actions.Ban(context.Background(), chatID, target(userID))
	assert.ErrorIs(t, err, errors.ErrPlatform)
	assert.Empty(t, client.CallsTo(platformtest.MethodBanUser))
}
