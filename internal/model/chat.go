package model

import "encoding/json"

const (
	ChatContextGeneral = "general"
	ChatContextWorkout = "workout"
	ChatContextDiet    = "diet"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type ChatRequest struct {
	Message      string  `json:"message"`
	ContextType  *string `json:"contextType"`
	ApplyChanges *bool   `json:"applyChanges,omitempty"`
}

type ChatReply struct {
	Reply       string          `json:"reply"`
	UpdatedPlan json.RawMessage `json:"updatedPlan,omitempty"`
}

// HasUpdatedPlan ignores an explicit null.
func (r *ChatReply) HasUpdatedPlan() bool {
	return len(r.UpdatedPlan) > 0 && string(r.UpdatedPlan) != "null"
}

type ChatMessage struct {
	Role    string
	Content string
}
