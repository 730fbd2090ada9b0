package loader

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText 按 BOM 识别 UTF-8 / UTF-16，没有 BOM 时按 UTF-8 处理
// 非法字节替换成 U+FFFD，不报错
func decodeText(b []byte) string {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}
