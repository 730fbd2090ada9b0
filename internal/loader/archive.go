package loader

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// WhatsApp 导出的 zip 里聊天记录固定叫 _chat.txt
const transcriptName = "_chat.txt"

// readTranscript 找到 zip 里的聊天文本并解码
func readTranscript(data []byte) (string, string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrArchiveCorrupt, err)
	}

	zf := findTranscript(zr.File)
	if zf == nil {
		return "", "", ErrMissingTranscript
	}

	rc, err := zf.Open()
	if err != nil {
		return "", "", fmt.Errorf("%w: open %s: %v", ErrArchiveCorrupt, zf.Name, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", "", fmt.Errorf("%w: read %s: %v", ErrArchiveCorrupt, zf.Name, err)
	}
	return zf.Name, decodeText(raw), nil
}

// findTranscript 优先根目录的 _chat.txt，其次子目录里的 _chat.txt，最后第一个 .txt
func findTranscript(files []*zip.File) *zip.File {
	var nested, firstText *zip.File
	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.Name == transcriptName {
			return f
		}
		if nested == nil && path.Base(f.Name) == transcriptName {
			nested = f
		}
		if firstText == nil && strings.EqualFold(path.Ext(f.Name), ".txt") {
			firstText = f
		}
	}
	if nested != nil {
		return nested
	}
	return firstText
}
