package parser

import "strings"

// Platform 聊天记录来源平台
type Platform string

const (
	WhatsApp Platform = "whatsapp"
	Telegram Platform = "telegram"
)

// Category 消息内容类别
type Category int

const (
	Text Category = iota
	Image
	Sticker
	Call
)

func (c Category) String() string {
	switch c {
	case Image:
		return "image"
	case Sticker:
		return "sticker"
	case Call:
		return "call"
	default:
		return "text"
	}
}

// Direction 通话方向
type Direction int

const (
	Incoming Direction = iota
	Outgoing
)

// CallEvent 通话记录
type CallEvent struct {
	Direction       Direction
	DurationSeconds int
	HasDuration     bool // false 时 DurationSeconds 恒为 0
	Missed          bool
}

// Unit 一条消息（WhatsApp 的一行 / Telegram 的一个元素）
type Unit struct {
	FromSelf  bool
	Sender    string
	Timestamp string
	Category  Category
	Body      string
	WordCount int
	Call      *CallEvent // 仅 Category == Call 时非空
}

// CurrentUser 当前用户标识，空标签表示未知
type CurrentUser struct {
	label string
}

func NewCurrentUser(label string) CurrentUser {
	return CurrentUser{label: strings.TrimSpace(label)}
}

func (u CurrentUser) Label() string { return u.label }

func (u CurrentUser) Known() bool { return u.label != "" }

// Is 判断发送者是否为当前用户（区分大小写，两端去空白）
func (u CurrentUser) Is(sender string) bool {
	return u.Known() && strings.TrimSpace(sender) == u.label
}
