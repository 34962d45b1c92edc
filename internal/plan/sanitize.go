package plan

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	tagPattern       = regexp.MustCompile(`<[^>]*>`)
	classNamePattern = regexp.MustCompile(`className\s*=\s*"[^"]*"`)
	classPattern     = regexp.MustCompile(`class\s*=\s*"[^"]*"`)
)

// Sanitize strips markup tags and class attributes from generated text.
// Removing one pattern can splice together a new match, so the patterns are
// applied until nothing changes. Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(s string) string {
	for {
		next := tagPattern.ReplaceAllString(s, "")
		next = classNamePattern.ReplaceAllString(next, "")
		next = classPattern.ReplaceAllString(next, "")
		if next == s {
			break
		}
		s = next
	}
	return strings.TrimSpace(s)
}

// textOf renders a loosely typed field as display text. Nested objects are
// shown as compact JSON rather than dropped.
func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return ""
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return scalarOf(t).String()
	}
}

// firstText sanitizes the first field among keys that has text.
func firstText(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if text := Sanitize(textOf(obj[key])); text != "" {
			return text
		}
	}
	return ""
}
