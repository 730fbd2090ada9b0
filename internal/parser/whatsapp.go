package parser

import "strings"

var (
	callPatterns = []string{
		"missed voice call", "voice call", "video call", "call ended", "call time",
	}
	imagePatterns = []string{
		"image omitted", "<image>", "img-",
		".jpg", ".jpeg", ".png", ".gif",
		"photo omitted", "attachment: photo", "attachment: image",
	}
	stickerPatterns = []string{
		"sticker omitted", "<sticker>", "sticker.webp", "attachment: sticker",
	}
)

// lineClassifier 处理 WhatsApp 导出的 _chat.txt
// 每条消息以 "[日期, 时间]" 开头，没有时间戳的行是上一条消息的续行
type lineClassifier struct{}

func (lineClassifier) Platform() Platform { return WhatsApp }

func (lineClassifier) Walk(content string, user CurrentUser, fn func(Unit)) error {
	for _, line := range SplitLines(content) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		// 续行不计入任何统计
		if !IsMessageStart(line) {
			continue
		}
		fn(classifyLine(line, user))
	}
	return nil
}

func classifyLine(line string, user CurrentUser) Unit {
	u := Unit{
		Sender:    Sender(line),
		Timestamp: Timestamp(line),
		Body:      MessageBody(line),
	}
	u.FromSelf = isSelfLine(line, u.Sender, user)

	lower := strings.ToLower(line)
	switch {
	case containsAny(lower, callPatterns):
		u.Category = Call
		// 只在正文里找时长，时间戳里的 "10:05" 不算
		seconds, ok := CallDuration(u.Body)
		call := &CallEvent{
			Direction:       Incoming,
			DurationSeconds: seconds,
			HasDuration:     ok,
			Missed:          strings.Contains(lower, "missed"),
		}
		if u.FromSelf || strings.Contains(lower, "outgoing") {
			call.Direction = Outgoing
		}
		u.Call = call
	case containsAny(lower, imagePatterns):
		u.Category = Image
	case containsAny(lower, stickerPatterns):
		u.Category = Sticker
	default:
		u.Category = Text
		u.WordCount = CountWords(u.Body)
	}
	return u
}

func isSelfLine(line, sender string, user CurrentUser) bool {
	if user.Known() {
		return user.Is(sender)
	}
	// 没有当前用户时，只认 "You:" / "You " 这种导出者本人的标记
	if sender == youMarker {
		return true
	}
	rest, ok := afterBracket(line)
	if !ok {
		return false
	}
	rest = strings.TrimSpace(stripBidi(rest))
	return strings.HasPrefix(rest, youMarker+":") || strings.HasPrefix(rest, youMarker+" ")
}
