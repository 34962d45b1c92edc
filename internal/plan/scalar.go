package plan

import (
	"encoding/json"
	"strconv"
)

// Scalar is a value the generator emits either as a number or as text,
// e.g. reps of 10 or "8-12".
type Scalar string

func (s Scalar) String() string {
	return string(s)
}

func (s Scalar) IsZero() bool {
	return s == ""
}

// Int returns the value as an integer when it is one.
func (s Scalar) Int() (int, bool) {
	n, err := strconv.Atoi(string(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s Scalar) Float() (float64, bool) {
	f, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Or returns s, or def when s is empty.
func (s Scalar) Or(def string) string {
	if s == "" {
		return def
	}
	return string(s)
}

func scalarOf(v any) Scalar {
	switch t := v.(type) {
	case string:
		return Scalar(Sanitize(t))
	case json.Number:
		return Scalar(t.String())
	case float64:
		return Scalar(strconv.FormatFloat(t, 'f', -1, 64))
	case int:
		return Scalar(strconv.Itoa(t))
	default:
		return ""
	}
}

// firstScalar returns the first non-empty value among keys.
func firstScalar(obj map[string]any, keys ...string) Scalar {
	for _, key := range keys {
		if s := scalarOf(obj[key]); s != "" {
			return s
		}
	}
	return ""
}

// firstString is firstScalar for fields that are always text. The result is
// sanitized like every other string scalar.
func firstString(obj map[string]any, keys ...string) string {
	return string(firstScalar(obj, keys...))
}
