package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const youMarker = "You"

var systemActorWords = []string{"added", "removed", "left", "group"}

// isSystemActor 群管理类的系统消息不能当成当前用户
func isSystemActor(name string) bool {
	return containsAny(strings.ToLower(name), systemActorWords)
}

// ResolveUser 导出者本人的 "You:" 优先，否则取第一个非系统发送者
func (lineClassifier) ResolveUser(content string) (string, bool) {
	var candidate string
	for _, line := range SplitLines(content) {
		if !IsMessageStart(line) {
			continue
		}
		name := Sender(line)
		if name == youMarker {
			return youMarker, true
		}
		if candidate == "" && name != "" && !isSystemActor(name) {
			candidate = name
		}
	}
	return candidate, candidate != ""
}

// ResolveUser 取第一条 outgoing/from_me 消息里的 .from_name
func (markupClassifier) ResolveUser(content string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", false
	}

	var name string
	doc.Find(".from_me, .outgoing").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name = strings.TrimSpace(s.Find(".from_name").First().Text())
		return name == ""
	})
	return name, name != ""
}
