package vapi

import (
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/Harshitk-cp/voicebridge/voice"
)

var unsupportedFilters = []string{
	"cursor", "callStatus", "direction", "callType", "userSentiment",
	"callSuccessful", "metadata", "dynamicVariables", "sort",
}

func TestProperty_UnsupportedFiltersListedInOrder(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var params voice.ListCallsParams
		var want []string
		for _, name := range unsupportedFilters {
			if !rapid.Bool().Draw(rt, name) {
				continue
			}
			want = append(want, name)
			switch name {
			case "cursor":
				params.Cursor = "c"
			case "callStatus":
				params.CallStatus = "ended"
			case "direction":
				params.Direction = voice.CallDirectionInbound
			case "callType":
				params.CallType = "web"
			case "userSentiment":
				params.UserSentiment = "Neutral"
			case "callSuccessful":
				params.CallSuccessful = voice.Bool(true)
			case "metadata":
				params.Metadata = map[string]any{"k": "v"}
			case "dynamicVariables":
				params.DynamicVariables = map[string]any{"k": "v"}
			case "sort":
				params.Sort = &voice.CallSort{}
			}
		}

		_, err := listCallsQuery(&params)
		if len(want) == 0 {
			if err != nil {
				rt.Fatalf("unexpected error: %v", err)
			}
			return
		}
		expected := "[vapi] Unsupported list params: " + strings.Join(want, ", ")
		if err == nil || err.Error() != expected {
			rt.Fatalf("got %v, want %q", err, expected)
		}
	})
}

func TestProperty_DurationFromTimestamps(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rapid.Check(t, func(rt *rapid.T) {
		elapsed := rapid.Int64Range(0, 86_400_000).Draw(rt, "elapsedMs")
		end := base.Add(time.Duration(elapsed) * time.Millisecond)

		c := mapCall(map[string]any{
			"startedAt": base.Format(time.RFC3339Nano),
			"endedAt":   end.Format(time.RFC3339Nano),
		})
		want := int((elapsed + 500) / 1000)
		if c.Duration == nil || *c.Duration != want {
			rt.Fatalf("duration for %dms: got %v, want %d", elapsed, c.Duration, want)
		}
	})
}

func TestProperty_CallStatusIsUnified(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		status := rapid.String().Draw(rt, "status")
		got := mapCallStatus(status)
		if !voice.ValidCallStatus(string(got)) {
			rt.Fatalf("status %q mapped to %q", status, got)
		}
	})
}
