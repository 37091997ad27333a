//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Category is a class of content that can be locked in a chat. All is a
// pseudo-category accepted by lock commands that expands to every other one.
// ENUM(links,forward,bots,media,all)
type Category string

// ContentKind is the classified kind of an incoming message part.
// ENUM(link,forwarded,bot_mention_or_added,photo,video,audio,document,sticker,animation,voice,video_note,plain_text)
type ContentKind string

// Disposition is the verdict for an incoming message.
// ENUM(allow,delete)
type Disposition string
