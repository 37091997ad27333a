package telegram

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	commandDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/command/domain"
	commandService "github.com/reshetovitsme/group-guard-bot/internal/modules/command/service"
	lockDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	lockService "github.com/reshetovitsme/group-guard-bot/internal/modules/lock/service"
	memberService "github.com/reshetovitsme/group-guard-bot/internal/modules/member/service"
	moderationDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/domain"
	permissionService "github.com/reshetovitsme/group-guard-bot/internal/modules/permission/service"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/worker"
	"github.com/samber/lo"
)

// Event names used for worker tasks and metrics.
const (
	eventCommand       = "command"
	eventMessage       = "message"
	eventEditedMessage = "edited_message"
	eventChatMember    = "chat_member"
)

// Handler turns Telegram updates into moderation events. Every update is
// queued on the worker pool keyed by its chat, so events of one chat are
// processed in arrival order.
type Handler struct {
	pool       *worker.Pool
	enforcer   *lockService.Enforcer
	guard      *memberService.Guard
	gate       *permissionService.Gate
	dispatcher *commandService.Dispatcher
}

// New creates a new Telegram handler
func New(
	pool *worker.Pool,
	enforcer *lockService.Enforcer,
	guard *memberService.Guard,
	gate *permissionService.Gate,
	dispatcher *commandService.Dispatcher,
) *Handler {
	return &Handler{
		pool:       pool,
		enforcer:   enforcer,
		guard:      guard,
		gate:       gate,
		dispatcher: dispatcher,
	}
}

// RegisterCommands registers bot commands
func (h *Handler) RegisterCommands(b *bot.Bot) {
	for _, name := range commandDomain.CommandNames() {
		b.RegisterHandler(bot.HandlerTypeMessageText, "/"+name, bot.MatchTypePrefix, h.handleCommand)
	}
}

// HandleUpdate processes incoming updates
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	switch {
	case update.Message != nil:
		h.submit(update.Message.Chat.ID, eventMessage, update)
	case update.EditedMessage != nil:
		h.submit(update.EditedMessage.Chat.ID, eventEditedMessage, update)
	case update.ChatMember != nil:
		h.submit(update.ChatMember.Chat.ID, eventChatMember, update)
	}
}

func (h *Handler) handleCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.submit(update.Message.Chat.ID, eventCommand, update)
}

func (h *Handler) submit(chatID int64, name string, update *models.Update) {
	if !h.pool.Submit(chatID, name, func(ctx context.Context) { h.Process(ctx, update) }) {
		slog.Warn("Dropped update, worker pool stopped", "event", name, "chat_id", chatID)
	}
}

// Process handles one update synchronously.
func (h *Handler) Process(ctx context.Context, update *models.Update) {
	switch {
	case update.Message != nil:
		h.processMessage(ctx, update.Message)
	case update.EditedMessage != nil:
		h.processEdit(ctx, update.EditedMessage)
	case update.ChatMember != nil:
		h.processMemberUpdate(update.ChatMember)
	}
}

func (h *Handler) processMessage(ctx context.Context, msg *models.Message) {
	if isGroup(msg.Chat) {
		if len(msg.NewChatMembers) > 0 {
			joined := lo.Map(msg.NewChatMembers, func(u models.User, _ int) moderationDomain.Member {
				return member(&u)
			})
			h.guard.HandleJoin(ctx, msg.Chat.ID, joined)
		}

		// Locks apply to command messages too; a deleted message is not dispatched.
		if !h.enforce(ctx, msg) {
			return
		}
	}

	if strings.HasPrefix(msg.Text, "/") {
		h.dispatcher.Dispatch(ctx, invocation(msg))
	}
}

// processEdit re-checks an edited message against the locks. Edits never
// trigger commands or join handling.
func (h *Handler) processEdit(ctx context.Context, msg *models.Message) {
	if isGroup(msg.Chat) {
		h.enforce(ctx, msg)
	}
}

// enforce reports whether the message survived lock enforcement.
func (h *Handler) enforce(ctx context.Context, msg *models.Message) bool {
	event := lockDomain.ContentEvent{
		ChatID:     msg.Chat.ID,
		MessageID:  msg.ID,
		Kinds:      Classify(msg),
		SentAsChat: msg.SenderChat != nil && msg.SenderChat.ID == msg.Chat.ID,
	}
	if msg.From != nil {
		sender := member(msg.From)
		event.SenderID, event.SenderName = sender.ID, sender.Display()
	}
	if msg.SenderChat != nil && !event.SentAsChat {
		event.SenderName = msg.SenderChat.Title
	}

	verdict, err := h.enforcer.Handle(ctx, event)
	if err != nil {
		slog.Warn("Lock enforcement failed", "chat_id", event.ChatID, "message_id", event.MessageID, "error", err)
	}
	return verdict.Disposition != lockDomain.DispositionDelete
}

// processMemberUpdate drops the cached administrator list whenever someone
// gains or loses administrator status.
func (h *Handler) processMemberUpdate(update *models.ChatMemberUpdated) {
	if isPrivileged(update.OldChatMember) == isPrivileged(update.NewChatMember) {
		return
	}
	h.gate.Invalidate(update.Chat.ID)
	slog.Info("Administrator list changed", "chat_id", update.Chat.ID)
}

func isPrivileged(m models.ChatMember) bool {
	return m.Type == models.ChatMemberTypeOwner || m.Type == models.ChatMemberTypeAdministrator
}

func invocation(msg *models.Message) commandDomain.Invocation {
	inv := commandDomain.Invocation{
		ChatID:    msg.Chat.ID,
		InGroup:   isGroup(msg.Chat),
		MessageID: msg.ID,
		Sender:    member(msg.From),
		Text:      msg.Text,
	}
	if reply := msg.ReplyToMessage; reply != nil && reply.From != nil && reply.SenderChat == nil && !isTopicRoot(msg, reply) {
		target := member(reply.From)
		inv.ReplyTo = &target
	}
	return inv
}

// isTopicRoot reports whether reply is the service message that opened the
// forum topic msg was posted in. Telegram attaches it to every topic message.
func isTopicRoot(msg, reply *models.Message) bool {
	return reply.ForumTopicCreated != nil || (msg.IsTopicMessage && reply.ID == msg.MessageThreadID)
}
