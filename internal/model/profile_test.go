package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_IsComplete(t *testing.T) {
	tests := []struct {
		name string
		json string
		want bool
	}{
		{"empty object", `{}`, false},
		{"age only", `{"age":30}`, true},
		{"height only", `{"height":180}`, true},
		{"weight as string", `{"weight":"72.5"}`, true},
		{"fitness level only", `{"fitnessLevel":"beginner"}`, true},
		{"fitness goal only", `{"fitnessGoal":"endurance"}`, true},
		{"zero values", `{"age":0,"height":"","weight":null,"fitnessLevel":""}`, false},
		{"unrelated fields", `{"gender":"female","injuries":"knee","workoutDaysPerWeek":4}`, false},
		{"non-numeric age", `{"age":"abc"}`, true},
		{"zero as text", `{"age":"0"}`, true},
		{"boolean age", `{"age":true}`, true},
		{"numeric fitness level", `{"fitnessLevel":3}`, true},
		{"blank but non-empty level", `{"fitnessLevel":"  "}`, true},
		{"object weight", `{"weight":{"value":70}}`, true},
		{"falsy values of every type", `{"age":false,"height":0,"weight":"","fitnessLevel":null,"fitnessGoal":false}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Profile
			require.NoError(t, json.Unmarshal([]byte(tt.json), &p))
			assert.Equal(t, tt.want, p.IsComplete())
		})
	}
}

func TestProfile_UnmarshalToleratesBadTypes(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"p1","age":true,"height":"181","fitnessLevel":3,"fitnessGoal":"endurance","gender":["x"]}`), &p))

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, Number(0), p.Age)
	assert.Equal(t, Number(181), p.Height)
	assert.Equal(t, "3", p.FitnessLevel)
	assert.Equal(t, GoalEndurance, p.FitnessGoal)
	assert.Equal(t, "", p.Gender)
	assert.True(t, p.IsComplete())

	assert.Error(t, json.Unmarshal([]byte(`["not","a","profile"]`), &p))
}

func TestProfile_IsCompleteNil(t *testing.T) {
	var p *Profile
	assert.False(t, p.IsComplete())
}

func TestNumber(t *testing.T) {
	var n Number
	require.NoError(t, json.Unmarshal([]byte(`"abc"`), &n))
	assert.Equal(t, Number(0), n)

	require.NoError(t, json.Unmarshal([]byte(`" 65 "`), &n))
	assert.Equal(t, Number(65), n)
	assert.Equal(t, "65", n.String())

	assert.Error(t, json.Unmarshal([]byte(`{}`), &n))

	assert.Equal(t, Number(1.75), ParseNumber("1.75"))
	assert.Equal(t, Number(0), ParseNumber(""))
	assert.Equal(t, "", Number(0).String())
}

func TestProfile_MarshalOmitsBlank(t *testing.T) {
	b, err := json.Marshal(Profile{Age: 30, FitnessGoal: GoalMaintain})
	require.NoError(t, err)
	assert.JSONEq(t, `{"age":30,"fitnessGoal":"maintain"}`, string(b))
}

func TestUser_UnmarshalAcceptsMongoID(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"abc","name":"Ada Lovelace","email":"ada@example.com"}`), &u))
	assert.Equal(t, "abc", u.ID)
	assert.Equal(t, "Ada", u.FirstName())
}

func TestExercise_Unmarshal(t *testing.T) {
	var e Exercise
	require.NoError(t, json.Unmarshal([]byte(`{"id":"7","name":"Plank","equipment":"none"}`), &e))
	assert.Equal(t, "7", e.ID)
	assert.Equal(t, []string{"none"}, e.EquipmentList())
}
