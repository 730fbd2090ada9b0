// Package analytics 把分类后的消息单元累加成一份统计结果
package analytics

// Record 一次分析的统计结果，字段名与原来的 JSON 输出保持一致
type Record struct {
	TotalMessages        int     `json:"totalMessages"`
	MessagesSent         int     `json:"messagesSent"`
	MessagesReceived     int     `json:"messagesReceived"`
	ShortReplies         int     `json:"shortReplies"`
	OutgoingCalls        int     `json:"outgoingCalls"`
	IncomingCalls        int     `json:"incomingCalls"`
	TotalCallDuration    float64 `json:"totalCallDuration"`
	AverageCallDuration  float64 `json:"averageCallDuration"`
	ImagesSent           int     `json:"imagesSent"`
	ImagesReceived       int     `json:"imagesReceived"`
	StickersSent         int     `json:"stickersSent"`
	StickersReceived     int     `json:"stickersReceived"`
	LongMessagesSent     int     `json:"longMessagesSent"`
	LongMessagesReceived int     `json:"longMessagesReceived"`
	AvgMessageLength     float64 `json:"avgMessageLength"`
	ReplyRate            float64 `json:"replyRate"`
}

// Empty 全零记录
func Empty() Record {
	return Record{}
}

// Calls 通话总数
func (r Record) Calls() int {
	return r.OutgoingCalls + r.IncomingCalls
}

// Thresholds 短回复 / 长消息的词数阈值
type Thresholds struct {
	ShortReplyMaxWords  int
	LongMessageMinWords int
}

// DefaultThresholds 短回复 1–5 词，长消息 ≥50 词
func DefaultThresholds() Thresholds {
	return Thresholds{ShortReplyMaxWords: 5, LongMessageMinWords: 50}
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
