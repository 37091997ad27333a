// Package platform describes the chat platform capabilities the moderation
// core depends on. The Telegram transport provides the production
// implementation; platformtest provides a recording fake.
package platform

import (
	"context"
	"time"
)

// Permissions is the set of member rights a restriction carries. Telegram
// lifts a restriction only when every right is granted again.
type Permissions struct {
	CanSendMessages       bool
	CanSendMedia          bool
	CanSendPolls          bool
	CanSendOtherMessages  bool
	CanAddWebPagePreviews bool
	CanChangeInfo         bool
	CanInviteUsers        bool
	CanPinMessages        bool
	CanManageTopics       bool
}

// Muted revokes every right.
func Muted() Permissions {
	return Permissions{}
}

// DefaultPermissions grants every right, which lifts the restriction. The
// chat's own default permissions still apply on top of it.
func DefaultPermissions() Permissions {
	return Permissions{
		CanSendMessages:       true,
		CanSendMedia:          true,
		CanSendPolls:          true,
		CanSendOtherMessages:  true,
		CanAddWebPagePreviews: true,
		CanChangeInfo:         true,
		CanInviteUsers:        true,
		CanPinMessages:        true,
		CanManageTopics:       true,
	}
}

// Administrators is the privileged membership of a chat. OwnerID is zero
// when the owner is hidden; AdminIDs never contains the owner.
type Administrators struct {
	OwnerID  int64
	AdminIDs []int64
}

// Client is the capability surface of the chat platform. Every method is a
// blocking network call and may fail with network or privilege errors.
type Client interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	// RestrictUser applies perms until the given time; a zero until means forever.
	RestrictUser(ctx context.Context, chatID, userID int64, perms Permissions, until time.Time) error
	BanUser(ctx context.Context, chatID, userID int64) error
	// UnbanUser lifts a ban. It succeeds without effect if the user is not banned.
	UnbanUser(ctx context.Context, chatID, userID int64) error
	// GetChatAdministrators returns the owner and the administrators in one query.
	GetChatAdministrators(ctx context.Context, chatID int64) (Administrators, error)
}
