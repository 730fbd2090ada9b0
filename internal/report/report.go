// Package report 把分析结果输出成文本或 JSON
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/liao/chat-analyzer/internal/analyzer"
	"github.com/liao/chat-analyzer/internal/search"
)

// Save 把结果写成 JSON 文件
func Save(path string, res *analyzer.Result) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile 读取之前保存的 JSON 结果
func LoadFromFile(path string) (*analyzer.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var res analyzer.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &res, nil
}

// WriteJSON 输出 JSON，v 可以是分析结果或搜索结果
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteSearchResults 每行一条：行号、时间、发送者、消息
func WriteSearchResults(w io.Writer, results []search.Result, styled bool) error {
	st := newStyles(styled)
	for _, r := range results {
		ts := r.Timestamp
		if ts == "" {
			ts = "-"
		}
		sender := r.Sender
		if sender == "" {
			sender = "-"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			st.dim.Render(fmt.Sprintf("%d", r.LineNumber)),
			st.dim.Render(ts),
			st.sender.Render(sender),
			r.Message,
		); err != nil {
			return err
		}
	}
	return nil
}
