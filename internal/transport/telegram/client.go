package telegram

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/metrics"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/platform"
	"github.com/samber/oops"
)

const (
	methodSendMessage       = "sendMessage"
	methodDeleteMessage     = "deleteMessage"
	methodRestrictMember    = "restrictChatMember"
	methodBanMember         = "banChatMember"
	methodUnbanMember       = "unbanChatMember"
	methodGetAdministrators = "getChatAdministrators"
)

// Client implements platform.Client on top of the Telegram Bot API.
type Client struct {
	bot     *bot.Bot
	timeout time.Duration
}

// NewClient creates a client whose every call is bounded by timeout.
// The bot is attached later with SetBot.
func NewClient(timeout time.Duration) *Client {
	return &Client{timeout: timeout}
}

// SetBot sets the bot instance used for API calls
func (c *Client) SetBot(b *bot.Bot) {
	c.bot = b
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.call(ctx, methodSendMessage, chatID, func(ctx context.Context) error {
		_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   text,
		})
		return err
	})
}

func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	return c.call(ctx, methodDeleteMessage, chatID, func(ctx context.Context) error {
		_, err := c.bot.DeleteMessage(ctx, &bot.DeleteMessageParams{
			ChatID:    chatID,
			MessageID: messageID,
		})
		return err
	})
}

func (c *Client) RestrictUser(ctx context.Context, chatID, userID int64, perms platform.Permissions, until time.Time) error {
	params := &bot.RestrictChatMemberParams{
		ChatID:                        chatID,
		UserID:                        userID,
		Permissions:                   chatPermissions(perms),
		UseIndependentChatPermissions: true,
	}
	if !until.IsZero() {
		params.UntilDate = int(until.Unix())
	}
	return c.call(ctx, methodRestrictMember, chatID, func(ctx context.Context) error {
		_, err := c.bot.RestrictChatMember(ctx, params)
		return err
	})
}

func (c *Client) BanUser(ctx context.Context, chatID, userID int64) error {
	return c.call(ctx, methodBanMember, chatID, func(ctx context.Context) error {
		_, err := c.bot.BanChatMember(ctx, &bot.BanChatMemberParams{
			ChatID: chatID,
			UserID: userID,
		})
		return err
	})
}

func (c *Client) UnbanUser(ctx context.Context, chatID, userID int64) error {
	return c.call(ctx, methodUnbanMember, chatID, func(ctx context.Context) error {
		_, err := c.bot.UnbanChatMember(ctx, &bot.UnbanChatMemberParams{
			ChatID:       chatID,
			UserID:       userID,
			OnlyIfBanned: true,
		})
		return err
	})
}

func (c *Client) GetChatAdministrators(ctx context.Context, chatID int64) (platform.Administrators, error) {
	var members []models.ChatMember
	err := c.call(ctx, methodGetAdministrators, chatID, func(ctx context.Context) error {
		var err error
		members, err = c.bot.GetChatAdministrators(ctx, &bot.GetChatAdministratorsParams{
			ChatID: chatID,
		})
		return err
	})
	if err != nil {
		return platform.Administrators{}, err
	}
	return administrators(members), nil
}

func (c *Client) call(ctx context.Context, method string, chatID int64, fn func(ctx context.Context) error) error {
	if c.bot == nil {
		return oops.With("method", method).Errorf("telegram bot is not attached")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)
	metrics.PlatformCallDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		return oops.With("method", method, "chat_id", chatID).Wrap(err)
	}
	return nil
}

func memberUserID(m models.ChatMember) (int64, bool) {
	switch {
	case m.Owner != nil && m.Owner.User != nil:
		return m.Owner.User.ID, true
	case m.Administrator != nil:
		return m.Administrator.User.ID, true
	default:
		return 0, false
	}
}

func administrators(members []models.ChatMember) platform.Administrators {
	var admins platform.Administrators
	for _, m := range members {
		id, ok := memberUserID(m)
		if !ok {
			continue
		}
		if m.Type == models.ChatMemberTypeOwner {
			admins.OwnerID = id
		} else {
			admins.AdminIDs = append(admins.AdminIDs, id)
		}
	}
	return admins
}

func chatPermissions(p platform.Permissions) *models.ChatPermissions {
	return &models.ChatPermissions{
		CanSendMessages:       p.CanSendMessages,
		CanSendAudios:         p.CanSendMedia,
		CanSendDocuments:      p.CanSendMedia,
		CanSendPhotos:         p.CanSendMedia,
		CanSendVideos:         p.CanSendMedia,
		CanSendVideoNotes:     p.CanSendMedia,
		CanSendVoiceNotes:     p.CanSendMedia,
		CanSendPolls:          p.CanSendPolls,
		CanSendOtherMessages:  p.CanSendOtherMessages,
		CanAddWebPagePreviews: p.CanAddWebPagePreviews,
		CanChangeInfo:         p.CanChangeInfo,
		CanInviteUsers:        p.CanInviteUsers,
		CanPinMessages:        p.CanPinMessages,
		CanManageTopics:       p.CanManageTopics,
	}
}
