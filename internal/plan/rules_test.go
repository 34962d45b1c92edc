package plan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		wantOK bool
		key    string
	}{
		{"object", `{"a":1}`, true, "a"},
		{"prose around object", "Sure! ```json\n{\"a\":1}\n``` enjoy", true, "a"},
		{"double encoded", `"{\"a\":1}"`, true, "a"},
		{"array", `[{"a":1}]`, true, "a"},
		{"no braces", "just words", false, ""},
		{"broken", `{"a":`, false, ""},
		{"blank", "  ", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, ok := decodeText(tt.in)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Contains(t, obj, tt.key)
			}
		})
	}
}

func TestDecodePayload(t *testing.T) {
	c := decodePayload([]byte(`{"weeklySchedule":[]}`))
	assert.NotNil(t, c.obj)
	assert.False(t, c.fromText)

	c = decodePayload([]byte(`not json at all`))
	assert.True(t, c.opaque)
	assert.Equal(t, map[string]any{"raw": "not json at all"}, c.obj)

	c = decodePayload([]byte(`"{\"weeklySchedule\":[]}"`))
	assert.True(t, c.fromText)
	assert.False(t, c.opaque)

	c = decodePayload([]byte(`{"a":1} trailing`))
	assert.True(t, c.fromText, "object recovered from surrounding text")

	c = decodePayload(nil)
	assert.Nil(t, c.obj)
}

func TestUnwrap(t *testing.T) {
	obj := func(s string) map[string]any {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(s), &m))
		return m
	}

	t.Run("kind key before plan", func(t *testing.T) {
		c := unwrap(KindDiet, candidate{obj: obj(`{"plan":{"from":"plan"},"dietPlan":{"from":"diet"}}`)})
		assert.Equal(t, "diet", c.obj["from"])
		assert.Equal(t, 1, c.depth)
	})

	t.Run("other kind key ignored", func(t *testing.T) {
		c := unwrap(KindWorkout, candidate{obj: obj(`{"dietPlan":{"x":1}}`)})
		assert.Equal(t, 0, c.depth)
	})

	t.Run("scalar wrapper ignored", func(t *testing.T) {
		c := unwrap(KindWorkout, candidate{obj: obj(`{"plan":"free text"}`)})
		assert.Equal(t, 0, c.depth)
		assert.Equal(t, "free text", c.obj["plan"])
	})

	t.Run("root schedule stops descent", func(t *testing.T) {
		c := unwrap(KindWorkout, candidate{obj: obj(`{"weeklySchedule":[{"day":"Mon"}],"plan":{"planName":"Block A"}}`)})
		assert.Equal(t, 0, c.depth)
		assert.Len(t, c.obj["weeklySchedule"], 1)
	})

	t.Run("wrapper text without schedule ignored", func(t *testing.T) {
		c := unwrap(KindWorkout, candidate{obj: obj(`{"workoutPlan":"notes {\"v\":1}"}`)})
		assert.Equal(t, 0, c.depth)
		assert.False(t, c.fromText)
	})

	t.Run("wrapper text with schedule followed", func(t *testing.T) {
		c := unwrap(KindWorkout, candidate{obj: obj(`{"workoutPlan":"{\"weeklySchedule\":[{\"day\":\"Fri\"}]}"}`)})
		assert.Equal(t, 1, c.depth)
		assert.True(t, c.fromText)
	})

	t.Run("nil candidate", func(t *testing.T) {
		c := unwrap(KindWorkout, candidate{})
		assert.Nil(t, c.obj)
	})
}

func TestMergeEmbedded(t *testing.T) {
	c := mergeEmbedded(KindWorkout, candidate{obj: map[string]any{
		"summary": "keep me",
		"raw":     `{"weeklySchedule":[{"day":"Sat"}],"summary":"from raw"}`,
	}})

	assert.True(t, c.fromText)
	assert.Equal(t, "from raw", c.obj["summary"])
	assert.Len(t, c.obj["weeklySchedule"], 1)

	existing := []any{map[string]any{"day": "Mon"}}
	c = mergeEmbedded(KindWorkout, candidate{obj: map[string]any{
		"weeklySchedule": existing,
		"raw":            `{"weeklySchedule":[{"day":"Sat"}]}`,
	}})
	assert.False(t, c.fromText)
	assert.Equal(t, existing, c.obj["weeklySchedule"])
}

func TestLocateSchedule(t *testing.T) {
	day := map[string]any{"day": "Mon"}

	schedule, fromRaw := locateSchedule(map[string]any{
		"weeklySchedule": []any{},
		"weeklySplit":    map[string]any{"weeklySchedule": []any{day}},
	})
	assert.Equal(t, []any{day}, schedule)
	assert.False(t, fromRaw)

	schedule, fromRaw = locateSchedule(map[string]any{"raw": `{"weeklySchedule":[{"day":"Mon"}]}`})
	assert.Len(t, schedule, 1)
	assert.True(t, fromRaw)

	schedule, _ = locateSchedule(map[string]any{"weeklySchedule": "Mon, Tue"})
	assert.Nil(t, schedule)
}

func TestScalar(t *testing.T) {
	n, ok := Scalar("12").Int()
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = Scalar("8-12").Int()
	assert.False(t, ok)

	f, ok := Scalar("2.5").Float()
	assert.True(t, ok)
	assert.InDelta(t, 2.5, f, 0.0001)

	assert.Equal(t, "-", Scalar("").Or("-"))
	assert.Equal(t, Scalar("3"), scalarOf(json.Number("3")))
	assert.Equal(t, Scalar("1.5"), scalarOf(1.5))
	assert.Equal(t, Scalar(""), scalarOf(true))
	assert.Equal(t, Scalar("8-12"), scalarOf(" <b>8-12</b> "))
}
