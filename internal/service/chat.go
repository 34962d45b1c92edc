package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/optifit/web/internal/events"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/plan"
)

const (
	ChatGreeting      = "Hi! I'm your OptiFit assistant. Ask me anything about workouts, exercises, or nutrition."
	ChatFallbackReply = "Sorry, I didn't understand that."
	ChatPlanUpdated   = "Plan updated successfully."
	ChatErrorReply    = "Something went wrong. Please try again."
)

var ErrEmptyMessage = errors.New("message is empty")

// ChatResult is the assistant's turn: its reply, plus a confirmation
// message when the plan was changed.
type ChatResult struct {
	Messages    []model.ChatMessage
	PlanUpdated bool
	Kind        plan.Kind
}

type ChatService struct {
	api ChatAPI
	bus *events.PlanBus
}

func NewChatService(api ChatAPI, bus *events.PlanBus) *ChatService {
	return &ChatService{
		api: api,
		bus: bus,
	}
}

// Send forwards message to the assistant. Changes are only applied to a
// plan when contextType names one.
func (s *ChatService) Send(ctx context.Context, sess *model.Session, message, contextType string, applyChanges bool) (*ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	kind, scoped := chatKind(contextType)
	apply := applyChanges && scoped
	req := model.ChatRequest{
		Message:      message,
		ApplyChanges: &apply,
	}
	if scoped {
		ct := string(kind)
		req.ContextType = &ct
	}

	reply, err := s.api.Chat(ctx, sess, req)
	if err != nil {
		return nil, fmt.Errorf("chat failed: %w", err)
	}

	content := strings.TrimSpace(reply.Reply)
	if content == "" {
		content = ChatFallbackReply
	}
	res := &ChatResult{
		Messages: []model.ChatMessage{{Role: model.ChatRoleAssistant, Content: content}},
	}

	if reply.HasUpdatedPlan() {
		res.PlanUpdated = true
		res.Messages = append(res.Messages, model.ChatMessage{Role: model.ChatRoleAssistant, Content: ChatPlanUpdated})
		if scoped {
			res.Kind = kind
			s.bus.Publish(events.PlanUpdated{
				UserID: sess.UserID,
				Kind:   kind,
				Plan:   reply.UpdatedPlan,
			})
		}
	}
	return res, nil
}

func chatKind(contextType string) (plan.Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(contextType)) {
	case model.ChatContextWorkout:
		return plan.KindWorkout, true
	case model.ChatContextDiet:
		return plan.KindDiet, true
	default:
		return "", false
	}
}
