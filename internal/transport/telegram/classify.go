package telegram

import (
	"strings"
	"unicode/utf16"

	"github.com/go-telegram/bot/models"
	lockDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	moderationDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/moderation/domain"
	"github.com/samber/lo"
)

// Classify lists the content kinds found in msg. A message may carry several
// kinds at once, e.g. a forwarded photo with a link in its caption. Messages
// with none of the guarded kinds classify as plain text.
func Classify(msg *models.Message) []lockDomain.ContentKind {
	var kinds []lockDomain.ContentKind

	text, entities := msg.Text, msg.Entities
	if text == "" {
		text, entities = msg.Caption, msg.CaptionEntities
	}

	if hasLink(entities) {
		kinds = append(kinds, lockDomain.ContentKindLink)
	}
	// Channel posts mirrored into the linked discussion group arrive as
	// automatic forwards and are not user forwards.
	if msg.ForwardOrigin != nil && !msg.IsAutomaticForward {
		kinds = append(kinds, lockDomain.ContentKindForwarded)
	}
	if msg.ViaBot != nil || mentionsBot(text, entities) {
		kinds = append(kinds, lockDomain.ContentKindBotMentionOrAdded)
	}
	kinds = append(kinds, mediaKinds(msg)...)

	if len(kinds) == 0 {
		return []lockDomain.ContentKind{lockDomain.ContentKindPlainText}
	}
	return kinds
}

func hasLink(entities []models.MessageEntity) bool {
	return lo.ContainsBy(entities, func(e models.MessageEntity) bool {
		return e.Type == models.MessageEntityTypeURL || e.Type == models.MessageEntityTypeTextLink
	})
}

func mentionsBot(text string, entities []models.MessageEntity) bool {
	return lo.ContainsBy(entities, func(e models.MessageEntity) bool {
		switch e.Type {
		case models.MessageEntityTypeMention:
			return isBotUsername(entityText(text, e))
		case models.MessageEntityTypeTextMention:
			return e.User != nil && e.User.IsBot
		default:
			return false
		}
	})
}

// Telegram requires every bot username to end in "bot".
func isBotUsername(mention string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimPrefix(mention, "@")), "bot")
}

// entityText cuts an entity out of text. Entity offsets count UTF-16 code units.
func entityText(text string, e models.MessageEntity) string {
	units := utf16.Encode([]rune(text))
	if e.Offset < 0 || e.Length < 0 || e.Offset+e.Length > len(units) {
		return ""
	}
	return string(utf16.Decode(units[e.Offset : e.Offset+e.Length]))
}

func mediaKinds(msg *models.Message) []lockDomain.ContentKind {
	var kinds []lockDomain.ContentKind
	if len(msg.Photo) > 0 {
		kinds = append(kinds, lockDomain.ContentKindPhoto)
	}
	if msg.Video != nil {
		kinds = append(kinds, lockDomain.ContentKindVideo)
	}
	if msg.Audio != nil {
		kinds = append(kinds, lockDomain.ContentKindAudio)
	}
	// Animations are also delivered with a document attached.
	if msg.Animation != nil {
		kinds = append(kinds, lockDomain.ContentKindAnimation)
	} else if msg.Document != nil {
		kinds = append(kinds, lockDomain.ContentKindDocument)
	}
	if msg.Sticker != nil {
		kinds = append(kinds, lockDomain.ContentKindSticker)
	}
	if msg.Voice != nil {
		kinds = append(kinds, lockDomain.ContentKindVoice)
	}
	if msg.VideoNote != nil {
		kinds = append(kinds, lockDomain.ContentKindVideoNote)
	}
	return kinds
}

func member(u *models.User) moderationDomain.Member {
	if u == nil {
		return moderationDomain.Member{}
	}
	return moderationDomain.Member{ID: u.ID, Name: displayName(u), IsBot: u.IsBot}
}

func displayName(u *models.User) string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func isGroup(chat models.Chat) bool {
	return chat.Type == models.ChatTypeGroup || chat.Type == models.ChatTypeSupergroup
}
