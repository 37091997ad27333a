package domain

// PastTense is the participle used in confirmation notices.
func (x Action) PastTense() string {
	switch x {
	case ActionKick:
		return "kicked"
	case ActionBan:
		return "banned"
	case ActionUnban:
		return "unbanned"
	case ActionMute:
		return "muted"
	case ActionUnmute:
		return "unmuted"
	default:
		return string(x)
	}
}
