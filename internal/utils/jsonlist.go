package utils

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// Strings normalizes a loosely stored multi-value field into a string list.
//
// A list is returned as-is (elements of []any are converted to strings).
// A string or byte slice is decoded as JSON and used when it holds a list.
// Everything else, including malformed JSON, nil and numbers, yields an
// empty list.  The result is never nil.
func Strings(v any) []string {
	switch t := v.(type) {
	case []string:
		if t == nil {
			return []string{}
		}
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, stringOf(e))
		}
		return out
	case string:
		return decodeList([]byte(t))
	case []byte:
		return decodeList(t)
	case json.RawMessage:
		return decodeList(t)
	case sql.NullString:
		if !t.Valid {
			return []string{}
		}
		return decodeList([]byte(t.String))
	case *string:
		if t == nil {
			return []string{}
		}
		return decodeList([]byte(*t))
	}
	return []string{}
}

func decodeList(b []byte) []string {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" {
		return []string{}
	}
	var items []any
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		// double-encoded: "\"[\\\"a\\\"]\""
		var inner string
		if json.Unmarshal([]byte(trimmed), &inner) == nil && inner != trimmed {
			return decodeList([]byte(inner))
		}
		return []string{}
	}
	return Strings(items)
}

func stringOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case float64:
		return fmt.Sprintf("%g", t)
	}
	return fmt.Sprint(v)
}
