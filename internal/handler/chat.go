package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/chat"
)

type ChatHandler struct {
	chat     *service.ChatService
	sessions *service.SessionService
}

func NewChatHandler(chat *service.ChatService, sessions *service.SessionService) *ChatHandler {
	return &ChatHandler{
		chat:     chat,
		sessions: sessions,
	}
}

// Send appends the user's message and the assistant's reply to the chat
// panel. A changed plan is announced with a planUpdated trigger so open
// plan views refetch.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	message := r.FormValue("message")

	res, err := h.chat.Send(r.Context(), sess, message, r.FormValue("contextType"), r.FormValue("applyChanges") == "true")
	if errors.Is(err, service.ErrEmptyMessage) {
		w.Header().Set("HX-Reswap", "none")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if sessionExpired(h.sessions, w, r, err) {
		return
	}

	msgs := []model.ChatMessage{{Role: model.ChatRoleUser, Content: message}}
	if err != nil {
		slog.Error("chat failed", "error", err, "user_id", sess.UserID)
		msgs = append(msgs, model.ChatMessage{Role: model.ChatRoleAssistant, Content: service.ChatErrorReply})
		ui.Render(w, r, chat.Messages(msgs))
		return
	}

	if res.PlanUpdated {
		trigger, err := json.Marshal(map[string]any{"planUpdated": map[string]string{"kind": string(res.Kind)}})
		if err == nil {
			w.Header().Set("HX-Trigger", string(trigger))
		}
	}

	ui.Render(w, r, chat.Messages(append(msgs, res.Messages...)))
}
