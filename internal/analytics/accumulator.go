package analytics

import "github.com/liao/chat-analyzer/internal/parser"

// Accumulator 单次前向遍历累加统计，Finalize 之后不再修改
type Accumulator struct {
	th Thresholds

	rec          Record
	totalWords   int
	textUnits    int
	replied      int
	awaitingNext bool // 上一条是自己发的文字消息，等下一条判断是否被回复
}

func NewAccumulator(th Thresholds) *Accumulator {
	if th.ShortReplyMaxWords <= 0 {
		th.ShortReplyMaxWords = DefaultThresholds().ShortReplyMaxWords
	}
	if th.LongMessageMinWords <= 0 {
		th.LongMessageMinWords = DefaultThresholds().LongMessageMinWords
	}
	return &Accumulator{th: th}
}

// Add 累加一条消息
func (a *Accumulator) Add(u parser.Unit) {
	if a.awaitingNext {
		if !u.FromSelf {
			a.replied++
		}
		a.awaitingNext = false
	}

	if u.Category == parser.Call {
		a.addCall(u)
		return
	}

	a.rec.TotalMessages++
	if u.FromSelf {
		a.rec.MessagesSent++
	} else {
		a.rec.MessagesReceived++
	}

	switch u.Category {
	case parser.Image:
		if u.FromSelf {
			a.rec.ImagesSent++
		} else {
			a.rec.ImagesReceived++
		}
		return
	case parser.Sticker:
		if u.FromSelf {
			a.rec.StickersSent++
		} else {
			a.rec.StickersReceived++
		}
		return
	}

	a.textUnits++
	a.totalWords += u.WordCount
	if u.WordCount >= 1 && u.WordCount <= a.th.ShortReplyMaxWords {
		a.rec.ShortReplies++
	}
	if u.WordCount >= a.th.LongMessageMinWords {
		if u.FromSelf {
			a.rec.LongMessagesSent++
		} else {
			a.rec.LongMessagesReceived++
		}
	}
	if u.FromSelf {
		a.awaitingNext = true
	}
}

func (a *Accumulator) addCall(u parser.Unit) {
	direction := parser.Incoming
	seconds := 0
	if u.Call != nil {
		direction = u.Call.Direction
		seconds = u.Call.DurationSeconds
	}
	if direction == parser.Outgoing {
		a.rec.OutgoingCalls++
	} else {
		a.rec.IncomingCalls++
	}
	a.rec.TotalCallDuration += float64(seconds)
}

// Units 已累加的消息数（含通话）
func (a *Accumulator) Units() int {
	return a.rec.TotalMessages + a.rec.Calls()
}

// Finalize 计算平均值和比率并返回结果
func (a *Accumulator) Finalize() Record {
	r := a.rec
	r.AvgMessageLength = ratio(float64(a.totalWords), float64(a.textUnits))
	r.AverageCallDuration = ratio(r.TotalCallDuration, float64(r.Calls()))
	r.ReplyRate = ratio(float64(a.replied), float64(r.MessagesSent))
	return r
}

// Aggregate 用 Classifier 遍历内容并返回最终统计
func Aggregate(c parser.Classifier, content string, user parser.CurrentUser, th Thresholds) (Record, int, error) {
	acc := NewAccumulator(th)
	if err := c.Walk(content, user, acc.Add); err != nil {
		return Empty(), 0, err
	}
	return acc.Finalize(), acc.Units(), nil
}
