package domain

import (
	"slices"
	"time"
)

// Lockable lists the concrete categories in canonical order.
var Lockable = []Category{CategoryLinks, CategoryForward, CategoryBots, CategoryMedia}

// Expand resolves the All pseudo-category into the concrete categories.
func (x Category) Expand() []Category {
	if x == CategoryAll {
		return slices.Clone(Lockable)
	}
	return []Category{x}
}

// LockConfig is the lock state of one chat. The zero value has nothing locked.
type LockConfig struct {
	ChatID     int64      `json:"chat_id"`
	Categories []Category `json:"categories"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewLockConfig returns the default configuration for a chat.
func NewLockConfig(chatID int64) LockConfig {
	return LockConfig{ChatID: chatID, Categories: []Category{}}
}

func (c LockConfig) IsLocked(category Category) bool {
	return slices.Contains(c.Categories, category)
}

// Set enables or disables the given categories. All is expanded first.
// It reports whether anything changed; repeating a call is a no-op.
func (c *LockConfig) Set(category Category, enabled bool) bool {
	changed := false
	for _, cat := range category.Expand() {
		has := c.IsLocked(cat)
		switch {
		case enabled && !has:
			c.Categories = append(c.Categories, cat)
			changed = true
		case !enabled && has:
			c.Categories = slices.DeleteFunc(c.Categories, func(v Category) bool { return v == cat })
			changed = true
		}
	}
	if changed {
		c.normalize()
	}
	return changed
}

// Clone returns a copy that shares no memory with c.
func (c LockConfig) Clone() LockConfig {
	c.Categories = slices.Clone(c.Categories)
	if c.Categories == nil {
		c.Categories = []Category{}
	}
	return c
}

func (c *LockConfig) normalize() {
	order := func(cat Category) int { return slices.Index(Lockable, cat) }
	slices.SortFunc(c.Categories, func(a, b Category) int { return order(a) - order(b) })
}

// CategoryFor maps a content kind onto the lock category guarding it.
// Plain text is never subject to locks.
func CategoryFor(kind ContentKind) (Category, bool) {
	switch kind {
	case ContentKindLink:
		return CategoryLinks, true
	case ContentKindForwarded:
		return CategoryForward, true
	case ContentKindBotMentionOrAdded:
		return CategoryBots, true
	case ContentKindPhoto, ContentKindVideo, ContentKindAudio, ContentKindDocument,
		ContentKindSticker, ContentKindAnimation, ContentKindVoice, ContentKindVideoNote:
		return CategoryMedia, true
	default:
		return "", false
	}
}

// ContentEvent is a classified incoming group message.
type ContentEvent struct {
	ChatID     int64
	MessageID  int
	SenderID   int64
	SenderName string
	Kinds      []ContentKind
	// SentAsChat is set when the message was posted on behalf of the chat
	// itself, which only its administrators can do.
	SentAsChat bool
}

// Verdict is the evaluation result with the locked categories that matched.
type Verdict struct {
	Disposition Disposition
	Matched     []Category
}
