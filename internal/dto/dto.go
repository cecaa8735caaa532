// Package dto reads and builds loosely typed vendor records decoded from
// JSON. It knows nothing about any vendor's field names.
package dto

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// String returns m[key] when it is a string, else "".
func String(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// Number returns m[key] as float64. Numeric strings are not accepted.
func Number(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case interface{ Float64() (float64, error) }:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// Map returns m[key] when it is an object, else nil.
func Map(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	v, _ := m[key].(map[string]any)
	return v
}

// Maps returns the objects in the array at m[key], skipping non-objects.
// A missing key yields nil.
func Maps(m map[string]any, key string) []map[string]any {
	if m == nil {
		return nil
	}
	switch v := m[key].(type) {
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok {
				out = append(out, obj)
			}
		}
		return out
	}
	return nil
}

// FirstString returns the first non-empty string among keys.
func FirstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := String(m, k); s != "" {
			return s
		}
	}
	return ""
}

// Merge shallow-copies src into dst, overwriting existing keys.
func Merge(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}

// Clone returns a shallow copy of m, or an empty map for nil.
func Clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	Merge(out, m)
	return out
}

// Object converts v to a JSON object map. Typed maps and structs are
// round-tripped through JSON; values that do not encode as an object
// report false.
func Object(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return t, true
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var out map[string]any
	if err := json.Unmarshal(buf, &out); err != nil || out == nil {
		return nil, false
	}
	return out, true
}

// RoundSeconds converts milliseconds to whole seconds, rounding halves up.
func RoundSeconds(ms float64) int {
	return int(math.Floor(ms/1000 + 0.5))
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 date or date-time. Values without a
// zone are taken as UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Truncate returns at most limit items. limit <= 0 means no limit.
func Truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// FormatValue renders v for a query string or form field. Non-scalar
// values are JSON encoded.
func FormatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case interface{ String() string }:
		return t.String()
	case nil:
		return ""
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(buf)
}
