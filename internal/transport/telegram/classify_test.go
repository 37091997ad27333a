package telegram

import (
	"testing"

	"github.com/go-telegram/bot/models"
	lockDomain "github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		msg  *models.Message
		want []lockDomain.ContentKind
	}{
		{
			name: "plain text",
			msg:  &models.Message{Text: "hello"},
			want: []lockDomain.ContentKind{lockDomain.ContentKindPlainText},
		},
		{
			name: "url entity",
			msg: &models.Message{
				Text:     "see example.com",
				Entities: []models.MessageEntity{{Type: models.MessageEntityTypeURL, Offset: 4, Length: 11}},
			},
			want: []lockDomain.ContentKind{lockDomain.ContentKindLink},
		},
		{
			name: "text link in a photo caption",
			msg: &models.Message{
				Photo:           []models.PhotoSize{{FileID: "p"}},
				Caption:         "click",
				CaptionEntities: []models.MessageEntity{{Type: models.MessageEntityTypeTextLink, Length: 5, URL: "https://spam.example"}},
			},
			want: []lockDomain.ContentKind{lockDomain.ContentKindLink, lockDomain.ContentKindPhoto},
		},
		{
			name: "user forward",
			msg:  &models.Message{Text: "fwd", ForwardOrigin: &models.MessageOrigin{}},
			want: []lockDomain.ContentKind{lockDomain.ContentKindForwarded},
		},
		{
			name: "automatic forward from the linked channel",
			msg:  &models.Message{Text: "post", ForwardOrigin: &models.MessageOrigin{}, IsAutomaticForward: true},
			want: []lockDomain.ContentKind{lockDomain.ContentKindPlainText},
		},
		{
			name: "bot mention after emoji",
			msg: &models.Message{
				Text:     "👉 @promo_bot",
				Entities: []models.MessageEntity{{Type: models.MessageEntityTypeMention, Offset: 3, Length: 10}},
			},
			want: []lockDomain.ContentKind{lockDomain.ContentKindBotMentionOrAdded},
		},
		{
			name: "human mention",
			msg: &models.Message{
				Text:     "hi @alice",
				Entities: []models.MessageEntity{{Type: models.MessageEntityTypeMention, Offset: 3, Length: 6}},
			},
			want: []lockDomain.ContentKind{lockDomain.ContentKindPlainText},
		},
		{
			name: "inline bot result",
			msg:  &models.Message{Text: "result", ViaBot: &models.User{ID: 5, IsBot: true}},
			want: []lockDomain.ContentKind{lockDomain.ContentKindBotMentionOrAdded},
		},
		{
			name: "animation is not also a document",
			msg:  &models.Message{Animation: &models.Animation{}, Document: &models.Document{}},
			want: []lockDomain.ContentKind{lockDomain.ContentKindAnimation},
		},
		{
			name: "voice",
			msg:  &models.Message{Voice: &models.Voice{}},
			want: []lockDomain.ContentKind{lockDomain.ContentKindVoice},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.msg))
		})
	}
}

func TestMember(t *testing.T) {
	assert.Equal(t, "@alice", member(&models.User{ID: 1, Username: "alice"}).Display())
	assert.Equal(t, "Bob Smith", member(&models.User{ID: 2, FirstName: "Bob", LastName: "Smith"}).Display())
	assert.True(t, member(&models.User{ID: 3, IsBot: true}).IsBot)
}
