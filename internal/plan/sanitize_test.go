package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Squat 3x10", "Squat 3x10"},
		{"tags", "<p>Rest <strong>90s</strong></p>", "Rest 90s"},
		{"className", `Bench className="text-red-500" press`, "Bench  press"},
		{"class", `Row class = "big"`, "Row"},
		{"trim", "  \n hello \t", "hello"},
		{"spliced class twice", `classclass="x"="y"Lunge`, "Lunge"},
		{"spliced class", `clas<i>s="x"</i>Lunge`, "Lunge"},
		{"unterminated", "a < b", "a < b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		`<div class="card"><span className="x">Deadlift</span></div>`,
		"<<b>div>>nested<</b>/div>",
		`class="a"class="b" text <`,
		`cla<br>ss="x" className=<i>"y"`,
		"   spaced   ",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), in)
		assert.NotRegexp(t, tagPattern, once)
		assert.NotRegexp(t, classNamePattern, once)
		assert.NotRegexp(t, classPattern, once)
	}
}
