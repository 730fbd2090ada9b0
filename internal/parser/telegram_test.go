package parser

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(data)
}

func TestTelegramWalk(t *testing.T) {
	content := loadFixture(t, "messages.html")

	var units []Unit
	err := markupClassifier{}.Walk(content, NewCurrentUser(""), func(u Unit) {
		units = append(units, u)
	})
	require.NoError(t, err)
	require.Len(t, units, 6)

	assert.Equal(t, Text, units[0].Category)
	assert.Equal(t, "Alice", units[0].Sender)
	assert.Equal(t, "02.01.2023 10:00:00", units[0].Timestamp)
	assert.False(t, units[0].FromSelf)
	assert.Equal(t, 2, units[0].WordCount)

	assert.Equal(t, Text, units[1].Category)
	assert.True(t, units[1].FromSelf)
	assert.Equal(t, 7, units[1].WordCount)

	// joined 消息继承上一条的发送者
	assert.Equal(t, Image, units[2].Category)
	assert.Equal(t, "Bob", units[2].Sender)
	assert.True(t, units[2].FromSelf)

	assert.Equal(t, Sticker, units[3].Category)
	assert.False(t, units[3].FromSelf)

	assert.Equal(t, Call, units[4].Category)
	require.NotNil(t, units[4].Call)
	assert.Equal(t, Incoming, units[4].Call.Direction)
	assert.Equal(t, 323, units[4].Call.DurationSeconds)

	assert.Equal(t, Call, units[5].Category)
	require.NotNil(t, units[5].Call)
	assert.Equal(t, Outgoing, units[5].Call.Direction)
	assert.True(t, units[5].Call.Missed)
	assert.False(t, units[5].Call.HasDuration)
}

func TestTelegramExplicitUserMatchesSender(t *testing.T) {
	content := `<!DOCTYPE html><html><body><div class="history">
<div class="message default"><div class="body"><div class="from_name">Alice</div><div class="text">hey</div></div></div>
<div class="message default joined"><div class="body"><div class="text">you there?</div></div></div>
<div class="message default"><div class="body"><div class="from_name">Bob</div><div class="text">yes</div></div></div>
</div></body></html>`

	var units []Unit
	err := markupClassifier{}.Walk(content, NewCurrentUser("Alice"), func(u Unit) {
		units = append(units, u)
	})
	require.NoError(t, err)
	require.Len(t, units, 3)
	assert.True(t, units[0].FromSelf)
	assert.True(t, units[1].FromSelf)
	assert.False(t, units[2].FromSelf)
}

func TestTelegramCallDurationSkipsDate(t *testing.T) {
	content := `<!DOCTYPE html><html><body>
<div class="message default outgoing"><div class="body">
<div class="pull_right date details" title="02.01.2023 10:04:00">10:04</div>
<div class="call">Outgoing call</div>
</div></div></body></html>`

	var units []Unit
	err := markupClassifier{}.Walk(content, NewCurrentUser(""), func(u Unit) {
		units = append(units, u)
	})
	require.NoError(t, err)
	require.Len(t, units, 1)
	require.NotNil(t, units[0].Call)
	assert.False(t, units[0].Call.HasDuration)
	assert.Equal(t, 0, units[0].Call.DurationSeconds)
}

func TestTelegramResolveUser(t *testing.T) {
	name, ok := markupClassifier{}.ResolveUser(loadFixture(t, "messages.html"))
	assert.True(t, ok)
	assert.Equal(t, "Bob", name)

	name, ok = markupClassifier{}.ResolveUser(`<!DOCTYPE html><div class="message"><div class="text">hi</div></div>`)
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestForPlatform(t *testing.T) {
	c, err := ForPlatform(WhatsApp)
	require.NoError(t, err)
	assert.Equal(t, WhatsApp, c.Platform())

	c, err = ForPlatform(Telegram)
	require.NoError(t, err)
	assert.Equal(t, Telegram, c.Platform())

	_, err = ForPlatform("signal")
	assert.Error(t, err)
}
