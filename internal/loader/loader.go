// Package loader 识别导出文件格式并解出聊天文本
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/liao/chat-analyzer/internal/parser"
)

var (
	ErrUnsupportedFormat     = errors.New("unsupported file format, expected a WhatsApp (.zip) or Telegram (.html) export")
	ErrMissingTranscript     = errors.New("invalid WhatsApp export: no chat file found")
	ErrInvalidTelegramExport = errors.New("invalid Telegram export: file doesn't appear to be a Telegram chat export")
	ErrArchiveCorrupt        = errors.New("archive is corrupt")
)

// File 待分析的导出文件
type File struct {
	Name string
	Data []byte
}

// ReadFile 从磁盘读取导出文件
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read file: %w", err)
	}
	return File{Name: filepath.Base(path), Data: data}, nil
}

// RawChat 解出的聊天文本，加载后不再修改
type RawChat struct {
	Content     string
	Platform    parser.Platform
	CurrentUser string
}

// Detect 按扩展名判断平台
func Detect(name string) (parser.Platform, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zip":
		return parser.WhatsApp, nil
	case ".html", ".htm":
		return parser.Telegram, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Load 解出聊天文本并附上当前用户；user 非空时直接使用，否则自动推断
func Load(ctx context.Context, f File, user string, log *slog.Logger) (*RawChat, error) {
	if log == nil {
		log = slog.Default()
	}

	platform, err := Detect(f.Name)
	if err != nil {
		return nil, err
	}

	var content string
	switch platform {
	case parser.WhatsApp:
		entry, text, err := readTranscript(f.Data)
		if err != nil {
			return nil, err
		}
		log.Debug("transcript found", "file", f.Name, "entry", entry)
		content = text
	case parser.Telegram:
		content = decodeText(f.Data)
		if !looksLikeTelegram(content) {
			return nil, ErrInvalidTelegramExport
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := &RawChat{
		Content:     content,
		Platform:    platform,
		CurrentUser: strings.TrimSpace(user),
	}
	if raw.CurrentUser == "" {
		c, err := parser.ForPlatform(platform)
		if err != nil {
			return nil, err
		}
		if name, ok := c.ResolveUser(content); ok {
			raw.CurrentUser = name
			log.Debug("current user detected", "platform", platform, "user", name)
		} else {
			log.Debug("current user not detected, treating all messages as received", "platform", platform)
		}
	}
	return raw, nil
}

func looksLikeTelegram(content string) bool {
	return strings.Contains(strings.ToLower(content), "<!doctype html") &&
		strings.Contains(content, "Telegram")
}
