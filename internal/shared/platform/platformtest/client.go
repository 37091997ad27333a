// Package platformtest provides an in-memory platform.Client that records
// every call, for tests.
package platformtest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/reshetovitsme/group-guard-bot/internal/shared/platform"
	"github.com/samber/lo"
)

const (
	MethodSendMessage   = "sendMessage"
	MethodDeleteMessage = "deleteMessage"
	MethodRestrictUser  = "restrictUser"
	MethodBanUser       = "banUser"
	MethodUnbanUser     = "unbanUser"
	MethodGetAdmins     = "getChatAdministrators"
)

var ErrInjected = errors.New("injected platform failure")

// Call is one recorded invocation.
type Call struct {
	Method    string
	ChatID    int64
	UserID    int64
	MessageID int
	Text      string
	Perms     platform.Permissions
	Until     time.Time
}

// Client is a thread-safe fake. Admins and Owners describe each chat; Fail
// makes the named method return ErrInjected.
type Client struct {
	mu     sync.Mutex
	calls  []Call
	admins map[int64][]int64
	owners map[int64]int64
	fail   map[string]error
	banned map[int64]map[int64]bool
}

var _ platform.Client = (*Client)(nil)

func New() *Client {
	return &Client{
		admins: make(map[int64][]int64),
		owners: make(map[int64]int64),
		fail:   make(map[string]error),
		banned: make(map[int64]map[int64]bool),
	}
}

// SetAdmins declares the owner and administrators of a chat.
func (c *Client) SetAdmins(chatID, ownerID int64, admins ...int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.owners[chatID] = ownerID
	c.admins[chatID] = admins
}

// Fail makes method return err (ErrInjected when err is nil).
func (c *Client) Fail(method string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		err = ErrInjected
	}
	c.fail[method] = err
}

func (c *Client) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

func (c *Client) CallsTo(method string) []Call {
	return lo.Filter(c.Calls(), func(call Call, _ int) bool {
		return call.Method == method
	})
}

// Messages returns the texts sent to chatID in order.
func (c *Client) Messages(chatID int64) []string {
	return lo.FilterMap(c.Calls(), func(call Call, _ int) (string, bool) {
		return call.Text, call.Method == MethodSendMessage && call.ChatID == chatID
	})
}

func (c *Client) IsBanned(chatID, userID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banned[chatID][userID]
}

func (c *Client) record(call Call) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
	return c.fail[call.Method]
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.record(Call{Method: MethodSendMessage, ChatID: chatID, Text: text})
}

func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	return c.record(Call{Method: MethodDeleteMessage, ChatID: chatID, MessageID: messageID})
}

func (c *Client) RestrictUser(ctx context.Context, chatID, userID int64, perms platform.Permissions, until time.Time) error {
	return c.record(Call{Method: MethodRestrictUser, ChatID: chatID, UserID: userID, Perms: perms, Until: until})
}

func (c *Client) BanUser(ctx context.Context, chatID, userID int64) error {
	if err := c.record(Call{Method: MethodBanUser, ChatID: chatID, UserID: userID}); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.banned[chatID] == nil {
		c.banned[chatID] = make(map[int64]bool)
	}
	c.banned[chatID][userID] = true
	return nil
}

func (c *Client) UnbanUser(ctx context.Context, chatID, userID int64) error {
	if err := c.record(Call{Method: MethodUnbanUser, ChatID: chatID, UserID: userID}); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.banned[chatID], userID)
	return nil
}

func (c *Client) GetChatAdministrators(ctx context.Context, chatID int64) (platform.Administrators, error) {
	if err := c.record(Call{Method: MethodGetAdmins, ChatID: chatID}); err != nil {
		return platform.Administrators{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return platform.Administrators{
		OwnerID:  c.owners[chatID],
		AdminIDs: append([]int64(nil), c.admins[chatID]...),
	}, nil
}
