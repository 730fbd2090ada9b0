package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkWhatsApp(t *testing.T, content string, user CurrentUser) []Unit {
	t.Helper()
	var units []Unit
	err := lineClassifier{}.Walk(content, user, func(u Unit) {
		units = append(units, u)
	})
	require.NoError(t, err)
	return units
}

func TestWhatsAppReceivedText(t *testing.T) {
	units := walkWhatsApp(t, "[1/2/23, 10:00:00 AM] Alice: hi there", NewCurrentUser("Bob"))
	require.Len(t, units, 1)

	u := units[0]
	assert.False(t, u.FromSelf)
	assert.Equal(t, "Alice", u.Sender)
	assert.Equal(t, "1/2/23, 10:00:00 AM", u.Timestamp)
	assert.Equal(t, Text, u.Category)
	assert.Equal(t, "hi there", u.Body)
	assert.Equal(t, 2, u.WordCount)
	assert.Nil(t, u.Call)
}

func TestWhatsAppMissedCall(t *testing.T) {
	units := walkWhatsApp(t, "[1/2/23, 10:05:00 AM] Bob: Missed voice call", NewCurrentUser("Bob"))
	require.Len(t, units, 1)

	u := units[0]
	assert.Equal(t, Call, u.Category)
	assert.True(t, u.FromSelf)
	require.NotNil(t, u.Call)
	assert.Equal(t, Outgoing, u.Call.Direction)
	assert.True(t, u.Call.Missed)
	assert.False(t, u.Call.HasDuration)
	assert.Equal(t, 0, u.Call.DurationSeconds)
	assert.Equal(t, 0, u.WordCount)
}

func TestWhatsAppCallDurationIgnoresTimestamp(t *testing.T) {
	units := walkWhatsApp(t, "[1/2/23, 10:05:00 AM] Alice: Voice call, call time 5:23", NewCurrentUser("Bob"))
	require.Len(t, units, 1)
	require.NotNil(t, units[0].Call)
	assert.Equal(t, Incoming, units[0].Call.Direction)
	assert.Equal(t, 323, units[0].Call.DurationSeconds)
	assert.True(t, units[0].Call.HasDuration)
}

func TestWhatsAppCategories(t *testing.T) {
	tests := []struct {
		line string
		want Category
	}{
		{"[1/2/23, 10:00:00 AM] Alice: \u200eimage omitted", Image},
		{"[1/2/23, 10:00:00 AM] Alice: IMG-20230102-WA0001.jpg (file attached)", Image},
		{"[1/2/23, 10:00:00 AM] Alice: <attached: 00000012-PHOTO-2023-01-02.jpg>", Image},
		{"[1/2/23, 10:00:00 AM] Alice: Attachment: Photo", Image},
		{"[1/2/23, 10:00:00 AM] Alice: sticker omitted", Sticker},
		{"[1/2/23, 10:00:00 AM] Alice: <attached: 00000013-STICKER.webp>", Sticker},
		{"[1/2/23, 10:00:00 AM] Alice: Video call", Call},
		{"[1/2/23, 10:00:00 AM] Alice: Missed voice call", Call},
		{"[1/2/23, 10:00:00 AM] Alice: see you tomorrow", Text},
	}
	for _, tt := range tests {
		units := walkWhatsApp(t, tt.line, NewCurrentUser("Bob"))
		require.Len(t, units, 1, tt.line)
		assert.Equal(t, tt.want, units[0].Category, tt.line)
		if tt.want != Text {
			assert.Equal(t, 0, units[0].WordCount, tt.line)
		}
	}
}

func TestWhatsAppContinuationLinesIgnored(t *testing.T) {
	content := strings.Join([]string{
		"[1/2/23, 10:00:00 AM] Alice: first line",
		"second line of the same message",
		"",
		"[1/2/23, 10:01:00 AM] Bob: ok",
	}, "\r\n")

	units := walkWhatsApp(t, content, NewCurrentUser("Bob"))
	require.Len(t, units, 2)
	assert.Equal(t, 2, units[0].WordCount)
	assert.Equal(t, "first line", units[0].Body)
	assert.True(t, units[1].FromSelf)
}

func TestWhatsAppYouMarkerWithoutUser(t *testing.T) {
	content := strings.Join([]string{
		"[1/2/23, 10:00:00 AM] Alice: hi",
		"[1/2/23, 10:01:00 AM] You: hey",
		"[1/2/23, 10:02:00 AM] You deleted this message",
	}, "\n")

	units := walkWhatsApp(t, content, NewCurrentUser(""))
	require.Len(t, units, 3)
	assert.False(t, units[0].FromSelf)
	assert.True(t, units[1].FromSelf)
	assert.True(t, units[2].FromSelf)
}

func TestWhatsAppSenderMatchIsExact(t *testing.T) {
	content := strings.Join([]string{
		"[1/2/23, 10:00:00 AM] bob: lower case",
		"[1/2/23, 10:01:00 AM] Bobby: longer name",
		"[1/2/23, 10:02:00 AM]  Bob : padded",
	}, "\n")

	units := walkWhatsApp(t, content, NewCurrentUser(" Bob "))
	require.Len(t, units, 3)
	assert.False(t, units[0].FromSelf)
	assert.False(t, units[1].FromSelf)
	assert.True(t, units[2].FromSelf)
}

func TestWhatsAppResolveUser(t *testing.T) {
	c := lineClassifier{}

	content := strings.Join([]string{
		"[1/2/23, 9:00:00 AM] Messages and calls are end-to-end encrypted.",
		"[1/2/23, 9:00:01 AM] Family Group: \u200eAlice added Bob",
		"[1/2/23, 9:00:02 AM] Carol left: bye",
		"[1/2/23, 10:00:00 AM] Alice: hi",
		"[1/2/23, 10:01:00 AM] Bob: hello",
	}, "\n")
	name, ok := c.ResolveUser(content)
	assert.True(t, ok)
	assert.Equal(t, "Alice", name)

	name, ok = c.ResolveUser(content + "\n[1/2/23, 10:02:00 AM] You: me")
	assert.True(t, ok)
	assert.Equal(t, "You", name)

	name, ok = c.ResolveUser("just some text\nwithout timestamps")
	assert.False(t, ok)
	assert.Empty(t, name)
}
