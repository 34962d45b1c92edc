package events

import (
	"encoding/json"

	"github.com/optifit/web/internal/plan"
)

// PlanUpdated is published when a plan changed outside the plan pages,
// e.g. through the chat assistant.
type PlanUpdated struct {
	UserID string
	Kind   plan.Kind
	Plan   json.RawMessage
}

type PlanBus = Bus[PlanUpdated]

func NewPlanBus() *PlanBus {
	return NewBus[PlanUpdated]()
}
