package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// 匹配 "[1/2/23, 10:00:00 AM]"，秒和 AM/PM 可选；WhatsApp 在 AM/PM 前可能用窄空格
	timestampRe = regexp.MustCompile(`\[\d{1,2}/\d{1,2}/\d{2,4},\s\d{1,2}:\d{2}(?::\d{2})?[\s\x{202F}\x{00A0}]?(?:[AaPp]\.?\s?[Mm]\.?)?\]`)
	bracketRe   = regexp.MustCompile(`\[([^\]]+)\]`)
	durationRe  = regexp.MustCompile(`(\d+):(\d+)`)
)

// bidi 控制字符，iOS 导出会在发送者和附件前插入
var bidiReplacer = strings.NewReplacer(
	"\u200e", "", "\u200f", "",
	"\u202a", "", "\u202b", "", "\u202c", "", "\u202d", "", "\u202e", "",
)

func stripBidi(s string) string {
	return bidiReplacer.Replace(s)
}

// IsMessageStart 该行是否以 WhatsApp 时间戳开始一条新消息
func IsMessageStart(line string) bool {
	return timestampRe.MatchString(line)
}

// Timestamp 返回第一个方括号内的内容
func Timestamp(line string) string {
	m := bracketRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(stripBidi(m[1]))
}

// afterBracket 返回第一个 "]" 之后的部分
func afterBracket(line string) (string, bool) {
	i := strings.IndexByte(line, ']')
	if i < 0 {
		return "", false
	}
	return line[i+1:], true
}

// Sender 提取 "]" 与其后第一个冒号之间的发送者名字
func Sender(line string) string {
	rest, ok := afterBracket(line)
	if !ok {
		return ""
	}
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return ""
	}
	return strings.TrimSpace(stripBidi(rest[:colon]))
}

// MessageBody 提取消息正文：发送者冒号之后，没有发送者时取 "]" 之后
func MessageBody(line string) string {
	rest, ok := afterBracket(line)
	if !ok {
		return ""
	}
	if colon := strings.IndexByte(rest, ':'); colon >= 0 {
		rest = rest[colon+1:]
	}
	return strings.TrimSpace(stripBidi(rest))
}

// CallDuration 取第一个 "M:SS" 换算成秒，找不到时返回 (0, false)
func CallDuration(s string) (int, bool) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return minutes*60 + seconds, true
}

// CountWords 去掉标点后按空白切分计数
func CountWords(s string) int {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	return len(strings.Fields(clean))
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
