package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// maxWrapDepth bounds how many wrapper keys unwrap descends through.
const maxWrapDepth = 2

var errTrailingData = errors.New("trailing data after JSON value")

// candidate is the value threaded through the rules. obj is nil when the
// payload held nothing usable.
type candidate struct {
	obj map[string]any
	// depth counts wrapper levels descended by unwrap.
	depth int
	// fromText is set once obj was decoded out of a text value.
	fromText bool
	// opaque is set when text could not be decoded and obj is {"raw": text}.
	opaque bool
}

type rule func(kind Kind, c candidate) candidate

// rules run in order after decodePayload.
var rules = []rule{
	unwrap,
	mergeEmbedded,
}

// decodePayload turns the raw bytes into the starting candidate. Bytes that
// are not JSON, and JSON strings, are handled as text.
func decodePayload(payload []byte) candidate {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return candidate{}
	}

	v, err := decodeJSON(trimmed)
	if err != nil {
		return textCandidate(string(trimmed))
	}

	switch t := v.(type) {
	case map[string]any:
		return candidate{obj: t}
	case string:
		return textCandidate(t)
	default:
		return candidate{}
	}
}

// textCandidate decodes text, falling back to keeping it opaque.
func textCandidate(s string) candidate {
	if obj, ok := decodeText(s); ok {
		return candidate{obj: obj, fromText: true}
	}
	if strings.TrimSpace(s) == "" {
		return candidate{}
	}
	return candidate{obj: map[string]any{"raw": s}, opaque: true}
}

// decodeText decodes an object out of text: first the whole string, then the
// span from the first '{' to the last '}'.
func decodeText(s string) (map[string]any, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	v, err := decodeJSON([]byte(s))
	if err == nil {
		switch t := v.(type) {
		case map[string]any:
			return t, true
		case string:
			// Double-encoded; the inner string is strictly shorter.
			return decodeText(t)
		}
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	v, err = decodeJSON([]byte(s[start : end+1]))
	if err != nil {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	return obj, ok
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	err := dec.Decode(&v)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return v, nil
}

// unwrap descends through the kind's envelope key (workoutPlan or dietPlan)
// or a generic plan key, at most maxWrapDepth times. A level that already
// carries a schedule is kept as is.
func unwrap(kind Kind, c candidate) candidate {
	for c.obj != nil && c.depth < maxWrapDepth {
		if schedule, _ := locateSchedule(c.obj); len(schedule) > 0 {
			break
		}
		inner, fromText, ok := wrapped(kind, c.obj)
		if !ok {
			break
		}
		c.obj = inner
		c.depth++
		c.fromText = c.fromText || fromText
	}
	return c
}

// wrapped returns the object under a wrapper key. Text under a wrapper key is
// only followed when it decodes to an object holding a schedule.
func wrapped(kind Kind, obj map[string]any) (inner map[string]any, fromText bool, ok bool) {
	for _, key := range []string{kind.EnvelopeKey(), "plan"} {
		switch v := obj[key].(type) {
		case map[string]any:
			return v, false, true
		case string:
			decoded, ok := decodeText(v)
			if !ok {
				continue
			}
			if schedule, _ := locateSchedule(decoded); len(schedule) > 0 {
				return decoded, true, true
			}
		}
	}
	return nil, false, false
}

// mergeEmbedded lifts a schedule serialized into the raw field onto the
// candidate. Decoded fields win over existing ones.
func mergeEmbedded(_ Kind, c candidate) candidate {
	if c.obj == nil || len(arrayAt(c.obj, "weeklySchedule")) > 0 {
		return c
	}

	embedded, ok := rawObject(c.obj)
	if !ok {
		return c
	}
	if _, ok := embedded["weeklySchedule"].([]any); !ok {
		return c
	}

	merged := make(map[string]any, len(c.obj)+len(embedded))
	for k, v := range c.obj {
		merged[k] = v
	}
	for k, v := range embedded {
		merged[k] = v
	}
	c.obj = merged
	c.fromText = true
	return c
}

// locateSchedule returns the first non-empty schedule array among the known
// locations, and whether it came out of the raw text.
func locateSchedule(obj map[string]any) (schedule []any, fromRaw bool) {
	candidates := [][]any{
		arrayAt(obj, "weeklySchedule"),
		arrayAt(child(obj, "weekly_split"), "weeklySchedule"),
		arrayAt(child(obj, "weeklySplit"), "weeklySchedule"),
	}
	for _, s := range candidates {
		if len(s) > 0 {
			return s, false
		}
	}

	if embedded, ok := rawObject(obj); ok {
		if s := arrayAt(embedded, "weeklySchedule"); len(s) > 0 {
			return s, true
		}
	}
	return nil, false
}

// rawObject decodes the raw field when it holds an object or JSON text.
func rawObject(obj map[string]any) (map[string]any, bool) {
	switch v := obj["raw"].(type) {
	case map[string]any:
		return v, true
	case string:
		return decodeText(v)
	}
	return nil, false
}

func child(obj map[string]any, key string) map[string]any {
	m, _ := obj[key].(map[string]any)
	return m
}

func arrayAt(obj map[string]any, key string) []any {
	a, _ := obj[key].([]any)
	return a
}

// truthy follows the loose truthiness the generator relies on for flags.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != "" && t != "false"
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case nil:
		return false
	default:
		return true
	}
}
