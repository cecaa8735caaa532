package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

func queryInt(q url.Values, key string) (int, error) {
	s := q.Get(key)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// queryPrefixed collects keys of the form prefix.name into a map.
func queryPrefixed(q url.Values, prefix string) map[string]any {
	var out map[string]any
	for k, vs := range q {
		name, ok := strings.CutPrefix(k, prefix+".")
		if !ok || name == "" || len(vs) == 0 {
			continue
		}
		if out == nil {
			out = map[string]any{}
		}
		out[name] = vs[0]
	}
	return out
}

type listQuery struct {
	Limit  int
	Cursor string
}

// pageParams reads limit and cursor, writing a 400 on a malformed limit.
func pageParams(w http.ResponseWriter, r *http.Request) (listQuery, bool) {
	q := r.URL.Query()
	limit, err := queryInt(q, "limit")
	if err != nil || limit < 0 {
		writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return listQuery{}, false
	}
	return listQuery{Limit: limit, Cursor: q.Get("cursor")}, true
}

type errInvalidQuery string

func (e errInvalidQuery) Error() string { return string(e) }
