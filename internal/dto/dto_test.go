package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessors(t *testing.T) {
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "a",
		"n": 12.5,
		"obj": {"k": "v"},
		"list": [{"id": "1"}, "skip", {"id": "2"}],
		"bad": 3
	}`), &rec))

	assert.Equal(t, "a", String(rec, "name"))
	assert.Equal(t, "", String(rec, "bad"))
	assert.Equal(t, "", String(nil, "name"))

	n, ok := Number(rec, "n")
	assert.True(t, ok)
	assert.Equal(t, 12.5, n)
	_, ok = Number(rec, "name")
	assert.False(t, ok)

	assert.Equal(t, "v", String(Map(rec, "obj"), "k"))
	assert.Nil(t, Map(rec, "name"))

	list := Maps(rec, "list")
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[1]["id"])
	assert.Nil(t, Maps(rec, "missing"))

	assert.Equal(t, "a", FirstString(rec, "missing", "name"))
}

func TestMergeOverwrites(t *testing.T) {
	dst := map[string]any{"a": 1, "b": 2}
	Merge(dst, map[string]any{"b": 3, "c": 4})
	assert.Equal(t, map[string]any{"a": 1, "b": 3, "c": 4}, dst)
}

func TestRoundSeconds(t *testing.T) {
	tests := []struct {
		ms   float64
		want int
	}{
		{0, 0},
		{499, 0},
		{500, 1},
		{1499, 1},
		{61500, 62},
		{-500, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundSeconds(tt.ms), "ms=%v", tt.ms)
	}
}

func TestParseTimestamp(t *testing.T) {
	got, ok := ParseTimestamp("2026-01-02T03:04:05Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), got)

	got, ok = ParseTimestamp("2026-01-02T03:04:05.123+02:00")
	require.True(t, ok)
	assert.Equal(t, int64(1767315845123), got.UnixMilli())

	_, ok = ParseTimestamp("2026-01-02")
	assert.True(t, ok)

	_, ok = ParseTimestamp("yesterday")
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2}, Truncate(items, 2))
	assert.Equal(t, items, Truncate(items, 0))
	assert.Equal(t, items, Truncate(items, 10))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "x", FormatValue("x"))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "5", FormatValue(5))
	assert.Equal(t, "2.5", FormatValue(2.5))
	assert.Equal(t, `{"a":1}`, FormatValue(map[string]any{"a": 1}))
	assert.Equal(t, "", FormatValue(nil))
}

func TestObject(t *testing.T) {
	m := map[string]any{"a": 1}
	got, ok := Object(m)
	require.True(t, ok)
	assert.Equal(t, m, got)

	got, ok = Object(map[string]string{"url": "https://x"})
	require.True(t, ok)
	assert.Equal(t, map[string]any{"url": "https://x"}, got)

	got, ok = Object(struct {
		URL     string `json:"url"`
		Timeout int    `json:"timeoutSeconds"`
	}{"https://y", 5})
	require.True(t, ok)
	assert.Equal(t, map[string]any{"url": "https://y", "timeoutSeconds": float64(5)}, got)

	_, ok = Object("https://z")
	assert.False(t, ok)
	_, ok = Object(nil)
	assert.False(t, ok)
	_, ok = Object([]string{"a"})
	assert.False(t, ok)
}
