package pages

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/plan"
	"github.com/optifit/web/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestPlanContent_RefetchesOnPlanUpdated(t *testing.T) {
	p := plan.Normalize(plan.KindDiet, []byte(`{"dietPlan":{"meals":[{"name":"Oats","calories":350}]}}`))

	html := render(t, PlanContent(plan.KindDiet, &service.PlanView{Plan: p}))

	assert.Contains(t, html, `id="plan-content"`)
	assert.Contains(t, html, `hx-trigger="planUpdated from:body"`)
	assert.Contains(t, html, `hx-get="/diet-plan"`)
	assert.Contains(t, html, "Oats")
}

func TestPlanContent_States(t *testing.T) {
	t.Run("unavailable", func(t *testing.T) {
		html := render(t, PlanContent(plan.KindWorkout, nil))
		assert.Contains(t, html, "could not load this plan")
	})

	t.Run("empty", func(t *testing.T) {
		html := render(t, PlanContent(plan.KindWorkout, &service.PlanView{Plan: plan.Normalize(plan.KindWorkout, nil)}))
		assert.Contains(t, html, "You don&#39;t have a workout plan yet")
	})

	t.Run("stale", func(t *testing.T) {
		p := plan.Normalize(plan.KindWorkout, []byte(`{"weeklySchedule":[{"day":"Mon","exercises":[{"name":"Squat"}]}]}`))
		view := &service.PlanView{Plan: p, Stale: true, FetchedAt: time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)}

		html := render(t, PlanContent(plan.KindWorkout, view))

		assert.Contains(t, html, "Showing your last saved plan from Mar 2, 09:30")
		assert.Contains(t, html, "Squat")
	})
}

func TestLoadingContent_EscapesPath(t *testing.T) {
	html := render(t, LoadingContent(`/dashboard?a=1&b="x"`))

	assert.Contains(t, html, `hx-trigger="load delay:1s"`)
	assert.NotContains(t, html, `b="x"`)
}
