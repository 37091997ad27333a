package domain

import (
	"strconv"

	"github.com/reshetovitsme/group-guard-bot/internal/shared/errors"
)

// Member identifies a chat participant.
type Member struct {
	ID    int64
	Name  string
	IsBot bool
}

// Display returns the member's name, or the numeric ID if it is unknown.
func (m Member) Display() string {
	if m.Name != "" {
		return m.Name
	}
	return strconv.FormatInt(m.ID, 10)
}

// Target is the resolved subject of a moderation command.
type Target struct {
	Member
	Resolution Resolution
}

// ResolveTarget picks the command subject. The author of the replied-to
// message always wins over an explicit argument; otherwise the first
// argument must be a numeric user ID. User IDs are positive; negative IDs
// belong to chats.
func ResolveTarget(replyTo *Member, args []string) (Target, error) {
	if replyTo != nil && replyTo.ID != 0 {
		return Target{Member: *replyTo, Resolution: ResolutionReply}, nil
	}
	if len(args) == 0 {
		return Target{}, errors.Resolution("Reply to a message of the user or pass their numeric ID.")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return Target{}, errors.Resolution("%q is not a valid user ID.", args[0])
	}
	return Target{Member: Member{ID: id}, Resolution: ResolutionArgument}, nil
}
