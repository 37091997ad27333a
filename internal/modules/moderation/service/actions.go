package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/domain"
	permissionService "github.com/reshetovitsme/group-guard-bot/internal/modules/permission/service"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/errors"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/metrics"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/platform"
)

// Identity is the bot's own account, learned at startup.
type Identity struct {
	ID       int64
	Username string
}

// Actions executes moderation actions against the platform. Callers must
// have authorized the invoker on the chat before calling the command
// variants; AutoKick is reserved for system-initiated removals.
type Actions struct {
	client platform.Client
	gate   *permissionService.Gate
	self   *Identity
}

// New creates a new moderation actions service
func New(client platform.Client, gate *permissionService.Gate, self *Identity) *Actions {
	return &Actions{
		client: client,
		gate:   gate,
		self:   self,
	}
}

// Kick removes the target without blocking it from rejoining: the member is
// banned and the ban is lifted right after.
func (a *Actions) Kick(ctx context.Context, chatID int64, target domain.Target) error {
	if err := a.checkTarget(ctx, chatID, target.Member, domain.ActionKick); err != nil {
		return a.observe(domain.ActionKick, err)
	}
	return a.observe(domain.ActionKick, a.kick(ctx, chatID, target.ID))
}

// AutoKick kicks a member on the bot's own initiative. Only the bot itself
// is refused.
func (a *Actions) AutoKick(ctx context.Context, chatID int64, member domain.Member) error {
	if a.isSelf(member.ID) {
		return a.observe(domain.ActionKick, errors.Permission("I can't remove myself."))
	}
	return a.observe(domain.ActionKick, a.kick(ctx, chatID, member.ID))
}

// Ban permanently removes the target from the chat.
func (a *Actions) Ban(ctx context.Context, chatID int64, target domain.Target) error {
	if err := a.checkTarget(ctx, chatID, target.Member, domain.ActionBan); err != nil {
		return a.observe(domain.ActionBan, err)
	}
	err := a.client.BanUser(ctx, chatID, target.ID)
	return a.observe(domain.ActionBan, errors.Platform(err, "Banning the user"))
}

// Unban lifts a ban. Unbanning a user who is not banned succeeds.
func (a *Actions) Unban(ctx context.Context, chatID int64, target domain.Target) error {
	if a.isSelf(target.ID) {
		return a.observe(domain.ActionUnban, errors.Permission("I can't unban myself."))
	}
	err := a.client.UnbanUser(ctx, chatID, target.ID)
	return a.observe(domain.ActionUnban, errors.Platform(err, "Unbanning the user"))
}

// Mute revokes the target's right to send messages until unmuted.
func (a *Actions) Mute(ctx context.Context, chatID int64, target domain.Target) error {
	if err := a.checkTarget(ctx, chatID, target.Member, domain.ActionMute); err != nil {
		return a.observe(domain.ActionMute, err)
	}
	err := a.client.RestrictUser(ctx, chatID, target.ID, platform.Muted(), time.Time{})
	return a.observe(domain.ActionMute, errors.Platform(err, "Muting the user"))
}

// Unmute restores the default member permissions.
func (a *Actions) Unmute(ctx context.Context, chatID int64, target domain.Target) error {
	if a.isSelf(target.ID) {
		return a.observe(domain.ActionUnmute, errors.Permission("I can't unmute myself."))
	}
	err := a.client.RestrictUser(ctx, chatID, target.ID, platform.DefaultPermissions(), time.Time{})
	return a.observe(domain.ActionUnmute, errors.Platform(err, "Unmuting the user"))
}

func (a *Actions) kick(ctx context.Context, chatID, userID int64) error {
	if err := a.client.BanUser(ctx, chatID, userID); err != nil {
		return errors.Platform(err, "Removing the user")
	}
	if err := a.client.UnbanUser(ctx, chatID, userID); err != nil {
		slog.Error("Kicked user stays banned, unban failed", "chat_id", chatID, "user_id", userID, "error", err)
		return errors.Platform(err, "The user was removed but lifting the ban")
	}
	return nil
}

// checkTarget refuses to act on the bot itself and on chat administrators.
func (a *Actions) checkTarget(ctx context.Context, chatID int64, target domain.Member, action domain.Action) error {
	if a.isSelf(target.ID) {
		return errors.Permission("I can't %s myself.", action)
	}
	exempt, err := a.gate.IsExempt(ctx, chatID, target.ID)
	if err != nil {
		return err
	}
	if exempt {
		return errors.Permission("%s is an administrator and can't be %s.", target.Display(), action.PastTense())
	}
	return nil
}

func (a *Actions) isSelf(userID int64) bool {
	return a.self != nil && a.self.ID != 0 && a.self.ID == userID
}

func (a *Actions) observe(action domain.Action, err error) error {
	outcome := "ok"
	if err != nil {
		outcome = errors.KindOf(err).String()
	}
	metrics.ModerationActions.WithLabelValues(action.String(), outcome).Inc()
	return err
}
