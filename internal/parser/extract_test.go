package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMessageStart(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"[1/2/23, 10:00:00 AM] Alice: hi there", true},
		{"[01/02/2023, 22:15] Alice: hi", true},
		{"[1/2/23, 9:05 PM] Alice: hi", true},
		{"[1/2/23, 10:00:00\u202fAM] Alice: hi", true},
		{"\u200e[1/2/23, 10:00:00 AM] Alice: \u200eimage omitted", true},
		{"and this is the rest of the message", false},
		{"1/2/23, 10:00 - Alice: hi", false},
		{"[note] something", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsMessageStart(tt.line), tt.line)
	}
}

func TestFieldExtraction(t *testing.T) {
	line := "[1/2/23, 10:00:00 AM] Alice: hi there: again"
	assert.Equal(t, "1/2/23, 10:00:00 AM", Timestamp(line))
	assert.Equal(t, "Alice", Sender(line))
	assert.Equal(t, "hi there: again", MessageBody(line))

	system := "[1/2/23, 10:00:00 AM] Bob added Carol"
	assert.Equal(t, "", Sender(system))
	assert.Equal(t, "Bob added Carol", MessageBody(system))

	assert.Equal(t, "", Timestamp("no brackets here"))
	assert.Equal(t, "", Sender("no brackets here"))
	assert.Equal(t, "", MessageBody("no brackets here"))

	bidi := "[1/2/23, 10:00:00 AM] \u200eAlice: \u200eimage omitted"
	assert.Equal(t, "Alice", Sender(bidi))
	assert.Equal(t, "image omitted", MessageBody(bidi))
}

func TestCallDuration(t *testing.T) {
	seconds, ok := CallDuration("call time 5:23")
	assert.True(t, ok)
	assert.Equal(t, 323, seconds)

	seconds, ok = CallDuration("call ended (Duration: 10:45)")
	assert.True(t, ok)
	assert.Equal(t, 645, seconds)

	seconds, ok = CallDuration("Missed voice call")
	assert.False(t, ok)
	assert.Equal(t, 0, seconds)
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"hi there", 2},
		{"hello, world!!", 2},
		{"it's   fine\tok", 3},
		{"...", 0},
		{"ça va bien", 3},
		{"👍", 0},
		{"snake_case word", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountWords(tt.in), tt.in)
	}
}
