package domain

import (
	"strings"

	moderationDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/domain"
)

// Invocation is a command message as received from a chat.
type Invocation struct {
	ChatID    int64
	InGroup   bool
	MessageID int
	Sender    moderationDomain.Member
	Text      string
	// ReplyTo is the author of the message the command replies to, if any.
	ReplyTo *moderationDomain.Member
}

// Parsed is the command line split into its parts.
type Parsed struct {
	Command Command
	// Mention is the bot username in "/ban@SomeBot", without the '@'.
	Mention string
	Args    []string
}

// Parse splits a command message. It reports false for text that is not
// one of the known commands.
func Parse(text string) (Parsed, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return Parsed{}, false
	}

	name, mention, _ := strings.Cut(strings.TrimPrefix(fields[0], "/"), "@")
	cmd, err := ParseCommand(name)
	if err != nil {
		return Parsed{}, false
	}
	return Parsed{Command: cmd, Mention: mention, Args: fields[1:]}, true
}
