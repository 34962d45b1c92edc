package chat

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
)

// Widget is the collapsible assistant panel. Replies are appended to
// #chat-messages.
func Widget() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<details id="chat" class="fixed bottom-4 left-4 z-40 w-96 rounded-xl border border-slate-200 bg-white shadow-xl">`)
		h.Raw(`<summary class="cursor-pointer select-none px-4 py-3 font-semibold text-indigo-600">Ask the coach</summary>`)
		h.Raw(`<div id="chat-messages" class="flex max-h-96 flex-col gap-2 overflow-y-auto px-4 py-2">`)
		h.Component(ctx, Messages([]model.ChatMessage{{Role: model.ChatRoleAssistant, Content: service.ChatGreeting}}))
		h.Raw("</div>")

		h.Raw(`<form class="flex flex-col gap-2 border-t border-slate-100 p-4" hx-post="/chat" hx-target="#chat-messages" hx-swap="beforeend scroll:bottom" data-reset>`)
		h.Raw(`<div class="flex gap-2"><select name="contextType" class="rounded-md border border-slate-300 px-2 py-1 text-sm">`)
		for _, ct := range []string{model.ChatContextGeneral, model.ChatContextWorkout, model.ChatContextDiet} {
			h.Raw("<option")
			h.Attr("value", ct)
			h.Raw(">")
			h.Text(ui.Label(ct))
			h.Raw("</option>")
		}
		h.Raw(`</select><label class="flex items-center gap-1 text-sm text-slate-600"><input type="checkbox" name="applyChanges" value="true"> Apply changes to my plan</label></div>`)
		h.Raw(`<div class="flex gap-2"><input type="text" name="message" required autocomplete="off" placeholder="Ask about workouts or nutrition" class="flex-1 rounded-md border border-slate-300 px-3 py-2 text-sm">`)
		h.Raw(`<button type="submit" class="rounded-md bg-indigo-600 px-3 py-2 text-sm font-medium text-white">Send</button></div>`)
		h.Raw("</form></details>")
		return h.Err()
	})
}

func Messages(msgs []model.ChatMessage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		for _, m := range msgs {
			h.Raw("<div")
			if m.Role == model.ChatRoleUser {
				h.Class("max-w-[80%] self-end whitespace-pre-wrap rounded-lg px-3 py-2 text-sm", "bg-indigo-600 text-white")
			} else {
				h.Class("max-w-[80%] self-start whitespace-pre-wrap rounded-lg px-3 py-2 text-sm", "bg-slate-100 text-slate-900")
			}
			h.Attr("data-role", m.Role)
			h.Raw(">")
			h.Text(m.Content)
			h.Raw("</div>")
		}
		return h.Err()
	})
}
