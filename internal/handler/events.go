package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/events"
)

const heartbeatInterval = 25 * time.Second

type EventsHandler struct {
	bus *events.PlanBus
}

func NewEventsHandler(bus *events.PlanBus) *EventsHandler {
	return &EventsHandler{
		bus: bus,
	}
}

// Stream sends plan-updated server-sent events for the current user until
// the client goes away.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	rc := http.NewResponseController(w)

	err := rc.SetWriteDeadline(time.Time{})
	if err != nil && !errors.Is(err, http.ErrNotSupported) {
		slog.Warn("failed to clear write deadline", "error", err)
	}

	updates := make(chan events.PlanUpdated, 8)
	unsubscribe := h.bus.Subscribe(r.Context(), func(ev events.PlanUpdated) {
		if ev.UserID != sess.UserID {
			return
		}
		select {
		case updates <- ev:
		default:
			slog.Warn("dropping plan event for slow client", "user_id", sess.UserID)
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	_, err = fmt.Fprint(w, ": connected\n\n")
	if err == nil {
		err = rc.Flush()
	}
	if err != nil {
		return
	}

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			_, err = fmt.Fprint(w, ": ping\n\n")
		case ev := <-updates:
			err = writeEvent(w, "plan-updated", map[string]string{"kind": string(ev.Kind)})
		}
		if err == nil {
			err = rc.Flush()
		}
		if err != nil {
			slog.Debug("event stream closed", "error", err, "user_id", sess.UserID)
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, payload)
	return err
}
