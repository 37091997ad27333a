//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Resolution records how a command target was determined.
// ENUM(reply,argument)
type Resolution string

// Action is a moderation action applied to a member.
// ENUM(kick,ban,unban,mute,unmute)
type Action string
