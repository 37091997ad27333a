//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Command is a text command understood by the bot.
// ENUM(start,help,kick,ban,unban,mute,unmute,lock,unlock,locks)
type Command string
