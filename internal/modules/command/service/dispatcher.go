package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/reshetovitsme/group-guard-bot/internal/modules/chat/store"
	"github.com/reshetovitsme/group-guard-bot/internal/modules/command/domain"
	lockDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	lockService "github.com/reshetovitsme/group-guard-bot/internal/modules/lock/service"
	moderationDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/domain"
	moderationService "github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/service"
	permissionService "github.com/reshetovitsme/group-guard-bot/internal/modules/permission/service"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/config"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/errors"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/metrics"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/platform"
)

// Dispatcher runs one command through parse, authorize, resolve target,
// execute and report. A failing stage skips straight to the report, so no
// side effect happens after a failure.
type Dispatcher struct {
	cfg       *config.Config
	store     *store.Store
	gate      *permissionService.Gate
	actions   *moderationService.Actions
	persister *lockService.Persister
	client    platform.Client
	self      *moderationService.Identity
}

// New creates a new command dispatcher
func New(
	cfg *config.Config,
	store *store.Store,
	gate *permissionService.Gate,
	actions *moderationService.Actions,
	persister *lockService.Persister,
	client platform.Client,
	self *moderationService.Identity,
) *Dispatcher {
	return &Dispatcher{
		cfg:       cfg,
		store:     store,
		gate:      gate,
		actions:   actions,
		persister: persister,
		client:    client,
		self:      self,
	}
}

// Dispatch handles a command message and posts the outcome to its chat.
// Text that is not a known command, or that addresses another bot, is
// ignored. The returned error is the failure that was reported.
func (d *Dispatcher) Dispatch(ctx context.Context, inv domain.Invocation) error {
	parsed, ok := domain.Parse(inv.Text)
	if !ok || !d.addressedToMe(parsed) {
		return nil
	}

	reply, err := d.execute(ctx, inv, parsed)
	if err != nil {
		metrics.CommandErrors.WithLabelValues(parsed.Command.String(), errors.KindOf(err).String()).Inc()
		slog.Info("Command failed",
			"command", parsed.Command, "chat_id", inv.ChatID, "user_id", inv.Sender.ID,
			"kind", errors.KindOf(err).String(), "error", err)
		d.report(ctx, inv.ChatID, failureText(err))
		return err
	}

	d.report(ctx, inv.ChatID, reply)
	return nil
}

func (d *Dispatcher) addressedToMe(parsed domain.Parsed) bool {
	if parsed.Mention == "" || d.self == nil || d.self.Username == "" {
		return true
	}
	return strings.EqualFold(parsed.Mention, d.self.Username)
}

func (d *Dispatcher) execute(ctx context.Context, inv domain.Invocation, parsed domain.Parsed) (string, error) {
	switch parsed.Command {
	case domain.CommandStart:
		return d.startText(inv.Sender), nil
	case domain.CommandHelp:
		return d.helpText(), nil
	case domain.CommandLocks:
		if err := requireGroup(inv); err != nil {
			return "", err
		}
		return statusText(d.store.GetLockConfig(inv.ChatID)), nil
	case domain.CommandLock, domain.CommandUnlock:
		return d.setLock(ctx, inv, parsed)
	case domain.CommandKick, domain.CommandBan, domain.CommandUnban, domain.CommandMute, domain.CommandUnmute:
		return d.moderate(ctx, inv, parsed)
	default:
		return "", errors.Usage("Unknown command /%s.", parsed.Command)
	}
}

func (d *Dispatcher) setLock(ctx context.Context, inv domain.Invocation, parsed domain.Parsed) (string, error) {
	if err := requireGroup(inv); err != nil {
		return "", err
	}
	if len(parsed.Args) == 0 {
		return "", errors.Usage("%s", usageText(parsed.Command))
	}
	category, err := lockDomain.ParseCategory(parsed.Args[0])
	if err != nil {
		return "", errors.Usage("Unknown lock type %q. %s", parsed.Args[0], usageText(parsed.Command))
	}

	if err := d.gate.Authorize(ctx, inv.ChatID, inv.Sender.ID); err != nil {
		return "", err
	}

	enabled := parsed.Command == domain.CommandLock
	_, changed := d.store.SetLock(inv.ChatID, category, enabled)
	if changed {
		if err := d.persister.Sync(ctx, inv.ChatID); err != nil {
			slog.Error("Failed to persist locks", "chat_id", inv.ChatID, "error", err)
		}
	}
	slog.Info("Locks updated",
		"chat_id", inv.ChatID, "user_id", inv.Sender.ID,
		"category", category, "enabled", enabled, "changed", changed)
	return lockText(category, enabled, changed), nil
}

func (d *Dispatcher) moderate(ctx context.Context, inv domain.Invocation, parsed domain.Parsed) (string, error) {
	if err := requireGroup(inv); err != nil {
		return "", err
	}
	if err := d.gate.Authorize(ctx, inv.ChatID, inv.Sender.ID); err != nil {
		return "", err
	}
	target, err := moderationDomain.ResolveTarget(inv.ReplyTo, parsed.Args)
	if err != nil {
		return "", err
	}

	action := moderationDomain.Action(parsed.Command)
	switch action {
	case moderationDomain.ActionKick:
		err = d.actions.Kick(ctx, inv.ChatID, target)
	case moderationDomain.ActionBan:
		err = d.actions.Ban(ctx, inv.ChatID, target)
	case moderationDomain.ActionUnban:
		err = d.actions.Unban(ctx, inv.ChatID, target)
	case moderationDomain.ActionMute:
		err = d.actions.Mute(ctx, inv.ChatID, target)
	case moderationDomain.ActionUnmute:
		err = d.actions.Unmute(ctx, inv.ChatID, target)
	}
	if err != nil {
		return "", err
	}

	slog.Info("Moderation action applied",
		"action", action, "chat_id", inv.ChatID, "user_id", inv.Sender.ID,
		"target_id", target.ID, "resolution", target.Resolution)
	return actionText(action, target), nil
}

func (d *Dispatcher) report(ctx context.Context, chatID int64, text string) {
	if err := d.client.SendMessage(ctx, chatID, text); err != nil {
		slog.Warn("Failed to post command reply", "chat_id", chatID, "error", err)
	}
}

func requireGroup(inv domain.Invocation) error {
	if !inv.InGroup {
		return errors.Usage("This command only works in groups.")
	}
	return nil
}
