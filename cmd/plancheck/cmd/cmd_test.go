package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCmd_Stdin(t *testing.T) {
	c := NormalizeCmd()
	var out bytes.Buffer
	c.SetIn(strings.NewReader(`{"plan":{"weeklySchedule":[{"day":"Mon","exercises":[{"exerciseName":"Squat","sets":3,"reps":10}]}]}}`))
	c.SetOut(&out)
	c.SetArgs([]string{})

	require.NoError(t, c.Execute())

	var got normalized
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "wrapped", got.Shape)
	require.Len(t, got.Days, 1)
	assert.Equal(t, "Mon", got.Days[0].Label)
	require.Len(t, got.Days[0].Entries, 1)
	assert.Equal(t, "Squat", got.Days[0].Entries[0].Name)
}

func TestNormalizeCmd_UnknownKind(t *testing.T) {
	c := NormalizeCmd()
	c.SetIn(strings.NewReader(`{}`))
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"--kind", "cardio"})

	err := c.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown plan kind")
}

func TestNormalizeCmd_GarbageIsEmpty(t *testing.T) {
	c := NormalizeCmd()
	var out bytes.Buffer
	c.SetIn(strings.NewReader(`not json`))
	c.SetOut(&out)
	c.SetArgs([]string{"-k", "diet"})

	require.NoError(t, c.Execute())

	var got normalized
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "diet", string(got.Kind))
	assert.Empty(t, got.Days)
}

func TestNormalizeCmd_MacrosAndOutlineUseCamelCase(t *testing.T) {
	c := NormalizeCmd()
	var out bytes.Buffer
	c.SetIn(strings.NewReader(`{"macros":{"calories":2100,"protein":"<b>160g</b>"},"progressionPlan":"Add 2.5kg weekly","weeklySplit":{"recommended":"Upper/Lower"}}`))
	c.SetOut(&out)
	c.SetArgs([]string{"--kind", "diet"})

	require.NoError(t, c.Execute())

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, map[string]any{"calories": "2100", "protein": "160g"}, got["macros"])
	assert.Equal(t, map[string]any{"progressionPlan": "Add 2.5kg weekly", "recommendedSplit": "Upper/Lower"}, got["outline"])
}

func TestSanitizeCmd(t *testing.T) {
	c := SanitizeCmd()
	var out bytes.Buffer
	c.SetIn(strings.NewReader(`<div class="x">Rest <b>day</b></div>`))
	c.SetOut(&out)
	c.SetArgs([]string{})

	require.NoError(t, c.Execute())
	assert.Equal(t, "Rest day\n", out.String())
}
