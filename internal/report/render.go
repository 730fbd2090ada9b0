package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/liao/chat-analyzer/internal/analyzer"
)

var (
	colorPrimary = lipgloss.Color("12")  // bright blue
	colorDim     = lipgloss.Color("240") // gray
	colorBorder  = lipgloss.Color("238") // dark gray
)

type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	dim    lipgloss.Style
	sender lipgloss.Style
	panel  lipgloss.Style
}

// newStyles styled=false 时所有样式都不输出转义序列（管道 / 文件）
func newStyles(styled bool) styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain}
	}
	return styles{
		title: lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		label: lipgloss.NewStyle().Foreground(colorDim).Width(22),
		value: lipgloss.NewStyle().Bold(true),
		dim:   lipgloss.NewStyle().Foreground(colorDim),
		sender: lipgloss.NewStyle().
			Foreground(colorPrimary),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
	}
}

type row struct {
	label, value string
}

type section struct {
	title string
	rows  []row
}

func sections(res *analyzer.Result) []section {
	a := res.Analytics
	return []section{
		{"Chat Summary", []row{
			{"Total Messages", FormatNumber(a.TotalMessages)},
			{"Messages Sent", FormatNumber(a.MessagesSent)},
			{"Messages Received", FormatNumber(a.MessagesReceived)},
			{"Short Replies", FormatNumber(a.ShortReplies)},
		}},
		{"Calls", []row{
			{"Outgoing Calls", FormatNumber(a.OutgoingCalls)},
			{"Incoming Calls", FormatNumber(a.IncomingCalls)},
			{"Total Call Time", FormatDuration(a.TotalCallDuration)},
			{"Average Call", FormatDuration(a.AverageCallDuration)},
		}},
		{"Media", []row{
			{"Images Sent", FormatNumber(a.ImagesSent)},
			{"Images Received", FormatNumber(a.ImagesReceived)},
			{"Stickers Sent", FormatNumber(a.StickersSent)},
			{"Stickers Received", FormatNumber(a.StickersReceived)},
		}},
		{"Messages", []row{
			{"Long Messages Sent", FormatNumber(a.LongMessagesSent)},
			{"Long Messages Received", FormatNumber(a.LongMessagesReceived)},
			{"Avg Message Length", fmt.Sprintf("%.1f words", a.AvgMessageLength)},
			{"Reply Rate", FormatPercent(a.ReplyRate)},
		}},
	}
}

// Render 输出文本报告
func Render(w io.Writer, res *analyzer.Result, styled bool) error {
	st := newStyles(styled)

	user := res.CurrentUser
	if user == "" {
		user = "(unknown)"
	}
	header := fmt.Sprintf("%s export, current user: %s", res.Platform, user)
	if _, err := fmt.Fprintln(w, st.dim.Render(header)); err != nil {
		return err
	}

	for _, sec := range sections(res) {
		var b strings.Builder
		b.WriteString(st.title.Render(sec.title))
		for _, r := range sec.rows {
			b.WriteString("\n")
			if styled {
				b.WriteString(st.label.Render(r.label) + st.value.Render(r.value))
			} else {
				fmt.Fprintf(&b, "%-24s%s", r.label, r.value)
			}
		}
		if _, err := fmt.Fprintln(w, st.panel.Render(b.String())); err != nil {
			return err
		}
	}
	return nil
}
