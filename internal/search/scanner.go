package search

import (
	"strings"

	"github.com/liao/chat-analyzer/internal/parser"
)

// Result 一行命中
type Result struct {
	LineNumber int    `json:"lineNumber"`
	Timestamp  string `json:"timestamp"`
	Sender     string `json:"sender"`
	Message    string `json:"message"`
}

// Scan 在原始内容里逐行做大小写不敏感的子串匹配
// 空关键词直接返回空列表，不扫描
func Scan(content, term string) []Result {
	results := []Result{}
	if strings.TrimSpace(term) == "" {
		return results
	}

	needle := strings.ToLower(term)
	for i, line := range parser.SplitLines(content) {
		if !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		results = append(results, parseLine(i+1, line))
	}
	return results
}

// parseLine 复用解析器的时间戳 / 发送者提取，任一失败时整行作为消息
func parseLine(lineNumber int, line string) Result {
	ts, sender := parser.Timestamp(line), parser.Sender(line)
	if ts == "" || sender == "" {
		return Result{LineNumber: lineNumber, Message: line}
	}

	r := Result{LineNumber: lineNumber, Timestamp: ts, Sender: sender, Message: line}
	if body := parser.MessageBody(line); body != "" {
		r.Message = body
	}
	return r
}
