package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reshetovitsme/group-guard-bot/internal/modules/command/domain"
	lockDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	moderationDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/domain"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/errors"
	"github.com/samber/lo"
)

// failureText renders an error as the notice posted to the chat.
func failureText(err error) string {
	switch errors.KindOf(err) {
	case errors.KindUsage:
		return "ℹ️ " + err.Error()
	case errors.KindResolution:
		return "❓ " + err.Error()
	case errors.KindPermission:
		return "❌ " + err.Error()
	case errors.KindPlatform:
		return "⚠️ " + err.Error() + "\nPlease try again."
	default:
		return "⚠️ Something went wrong while processing the command."
	}
}

func actionText(action moderationDomain.Action, target moderationDomain.Target) string {
	return fmt.Sprintf("✅ %s was %s.", target.Display(), action.PastTense())
}

func lockText(category lockDomain.Category, enabled, changed bool) string {
	names := joinCategories(category.Expand())
	switch {
	case enabled && changed:
		return "🔒 Locked: " + names + "."
	case enabled:
		return "ℹ️ Already locked: " + names + "."
	case changed:
		return "🔓 Unlocked: " + names + "."
	default:
		return "ℹ️ Already unlocked: " + names + "."
	}
}

func statusText(cfg lockDomain.LockConfig) string {
	if len(cfg.Categories) == 0 {
		return "🔓 Nothing is locked in this chat."
	}
	return "🔒 Locked in this chat: " + joinCategories(cfg.Categories) + "."
}

func joinCategories(categories []lockDomain.Category) string {
	return strings.Join(lo.Map(categories, func(cat lockDomain.Category, _ int) string {
		return cat.String()
	}), ", ")
}

func (d *Dispatcher) startText(sender moderationDomain.Member) string {
	return fmt.Sprintf(`👋 Hi %s! I am your group protection bot.

Owner: %s
Channel: %s

Use /help to see available commands.`, sender.Display(), d.owner(), orNotSet(d.cfg.ChannelUsername))
}

func (d *Dispatcher) helpText() string {
	categories := strings.Join(lockDomain.CategoryNames(), ", ")
	return fmt.Sprintf(`🛡 Moderation commands (administrators):
/kick [reply or ID] - remove a member, they may rejoin
/ban [reply or ID] - ban a member permanently
/unban [reply or ID] - lift a ban
/mute [reply or ID] - stop a member from sending messages
/unmute [reply or ID] - let a muted member speak again

🔒 Lock commands (administrators):
/lock <type> - lock a content type (%[1]s)
/unlock <type> - unlock a content type (%[1]s)

ℹ️ General commands:
/locks - show what is locked in this chat
/start - start the bot
/help - show this message

Bot owner: %[2]s
Support channel: %[3]s`, categories, d.owner(), orNotSet(d.cfg.ChannelUsername))
}

func (d *Dispatcher) owner() string {
	if d.cfg.OwnerUsername == "" && d.cfg.OwnerID != 0 {
		return strconv.FormatInt(d.cfg.OwnerID, 10)
	}
	return orNotSet(d.cfg.OwnerUsername)
}

func orNotSet(s string) string {
	return lo.Ternary(s == "", "not set", s)
}

func usageText(cmd domain.Command) string {
	return fmt.Sprintf("Usage: /%s <%s>", cmd, strings.Join(lockDomain.CategoryNames(), "|"))
}
