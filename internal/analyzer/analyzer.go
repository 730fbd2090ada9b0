// Package analyzer 是分析流程的入口：加载 → 分类 → 累加
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/liao/chat-analyzer/internal/analytics"
	"github.com/liao/chat-analyzer/internal/loader"
	"github.com/liao/chat-analyzer/internal/parser"
	"github.com/liao/chat-analyzer/internal/search"
)

// ErrEmptyResult 解析成功但一条消息都没识别出来，通常是格式判断错了
var ErrEmptyResult = errors.New("no messages were found in the chat export, please check the file format")

type Options struct {
	// CurrentUser 为空时自动推断
	CurrentUser string
	Thresholds  analytics.Thresholds
	Logger      *slog.Logger
}

// Result 分析结果
type Result struct {
	Platform    parser.Platform  `json:"platform"`
	CurrentUser string           `json:"currentUser,omitempty"`
	Analytics   analytics.Record `json:"analytics"`
}

// Analyze 分析一个导出文件，出错时不返回部分结果
func Analyze(ctx context.Context, f loader.File, opts Options) (*Result, error) {
	res, err := analyze(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze chat data: %w", err)
	}
	return res, nil
}

func analyze(ctx context.Context, f loader.File, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	raw, err := loader.Load(ctx, f, opts.CurrentUser, log)
	if err != nil {
		return nil, err
	}
	log.Debug("chat parsed", "file", f.Name, "platform", raw.Platform)

	c, err := parser.ForPlatform(raw.Platform)
	if err != nil {
		return nil, err
	}
	user := parser.NewCurrentUser(raw.CurrentUser)
	log.Debug("using current user", "user", user.Label())

	rec, units, err := analytics.Aggregate(c, raw.Content, user, opts.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("classify %s messages: %w", raw.Platform, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if units == 0 {
		return nil, ErrEmptyResult
	}

	log.Debug("analysis complete",
		"messages", rec.TotalMessages,
		"sent", rec.MessagesSent,
		"received", rec.MessagesReceived,
		"calls", rec.Calls(),
	)
	return &Result{
		Platform:    raw.Platform,
		CurrentUser: user.Label(),
		Analytics:   rec,
	}, nil
}

// Search 在原始聊天文本中查找关键词，不会失败
func Search(content, term string) []search.Result {
	return search.Scan(content, term)
}

// SearchFile 先加载导出文件再查找
func SearchFile(ctx context.Context, f loader.File, term string, log *slog.Logger) ([]search.Result, error) {
	raw, err := loader.Load(ctx, f, "", log)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat data: %w", err)
	}
	return Search(raw.Content, term), nil
}
