package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// markupClassifier 处理 Telegram Desktop 导出的 messages.html
// 每个 .message 元素是一条消息
type markupClassifier struct{}

func (markupClassifier) Platform() Platform { return Telegram }

func (markupClassifier) Walk(content string, user CurrentUser, fn func(Unit)) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("parse HTML: %w", err)
	}

	var (
		lastSender string
		walkErr    error
	)
	doc.Find(".message").EachWithBreak(func(i int, s *goquery.Selection) bool {
		u, err := classifyElement(s, lastSender, user)
		if err != nil {
			walkErr = fmt.Errorf("message %d: %w", i, err)
			return false
		}
		if u.Sender != "" {
			lastSender = u.Sender
		}
		fn(u)
		return true
	})
	return walkErr
}

func classifyElement(s *goquery.Selection, lastSender string, user CurrentUser) (Unit, error) {
	inner, err := s.Html()
	if err != nil {
		return Unit{}, fmt.Errorf("read markup: %w", err)
	}
	lower := strings.ToLower(inner)

	sender := strings.TrimSpace(s.Find(".from_name").First().Text())
	// 连续消息（joined）不重复显示发送者
	if sender == "" && s.HasClass("joined") {
		sender = lastSender
	}

	ts, _ := s.Find(".date").First().Attr("title")

	u := Unit{
		Sender:    sender,
		Timestamp: strings.TrimSpace(ts),
		FromSelf:  isOutgoingElement(s) || user.Is(sender),
	}

	switch {
	// 贴纸本身也是 <img>，要先判断
	case strings.Contains(lower, "sticker"):
		u.Category = Sticker
	case s.Find("img").Not(".userpic").Length() > 0 || strings.Contains(lower, "photo"):
		u.Category = Image
	case strings.Contains(lower, "call"):
		u.Category = Call
		u.Call = elementCall(s, lower, u.FromSelf)
	default:
		u.Category = Text
		u.Body = strings.TrimSpace(s.Find(".text").First().Text())
		u.WordCount = CountWords(u.Body)
	}
	return u, nil
}

func isOutgoingElement(s *goquery.Selection) bool {
	return s.HasClass("outgoing") || s.HasClass("from_me")
}

func elementCall(s *goquery.Selection, lower string, fromSelf bool) *CallEvent {
	call := &CallEvent{
		Direction: Incoming,
		Missed:    strings.Contains(lower, "missed"),
	}
	if fromSelf || strings.Contains(lower, "outgoing") {
		call.Direction = Outgoing
	}

	// 优先在通话节点里找时长；否则去掉 .date（发送时间）后在整段标记里找
	var source string
	if media := s.Find(".media_call"); media.Length() > 0 {
		source = media.Text()
	} else {
		c := s.Clone()
		c.Find(".date").Remove()
		source, _ = c.Html()
	}
	call.DurationSeconds, call.HasDuration = CallDuration(source)
	return call
}
