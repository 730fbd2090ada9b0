package parser

import (
	"fmt"
	"strings"
)

// Classifier 按平台把原始聊天内容切分成消息单元
type Classifier interface {
	Platform() Platform
	// ResolveUser 在未显式指定时推断当前用户
	ResolveUser(content string) (string, bool)
	// Walk 按原始顺序对每条消息调用 fn
	Walk(content string, user CurrentUser, fn func(Unit)) error
}

// ForPlatform 返回对应平台的 Classifier
func ForPlatform(p Platform) (Classifier, error) {
	switch p {
	case WhatsApp:
		return lineClassifier{}, nil
	case Telegram:
		return markupClassifier{}, nil
	default:
		return nil, fmt.Errorf("no classifier for platform %q", p)
	}
}

// SplitLines 按 \n 切分并去掉行尾 \r
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
