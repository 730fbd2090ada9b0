package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatDuration 秒数转成 "1 hr 5 min" 这种形式，不足一分钟按 0 min
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return "0 min"
	}
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%d min", minutes)
	case minutes == 0:
		return fmt.Sprintf("%d hr", hours)
	default:
		return fmt.Sprintf("%d hr %d min", hours, minutes)
	}
}

// FormatNumber 千分位分组
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent 比率转百分比
func FormatPercent(r float64) string {
	return fmt.Sprintf("%.1f%%", r*100)
}
