package pages

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/layouts"
)

// Education shows the article index with current expanded.
func Education(articles []*service.Article, current *service.Article) templ.Component {
	return layouts.Base("Learn", group(
		header("Learn", "Short guides on training and nutrition."),
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			h := ui.NewHTML(w)
			if len(articles) == 0 {
				h.Component(ctx, empty("No articles yet.", nil))
				return h.Err()
			}

			h.Raw(`<div class="grid gap-6 md:grid-cols-[16rem_1fr]"><nav><ul class="space-y-1">`)
			for _, a := range articles {
				h.Raw("<li><a")
				h.Href("href", "/education?article="+url.QueryEscape(a.Slug))
				if current != nil && a.Slug == current.Slug {
					h.Class("flex items-center gap-2 rounded-md px-3 py-2 text-sm", "bg-indigo-50 font-medium text-indigo-700")
				} else {
					h.Class("flex items-center gap-2 rounded-md px-3 py-2 text-sm", "text-slate-700 hover:bg-slate-100")
				}
				h.Raw(">")
				if a.Icon != "" {
					h.Raw(`<span aria-hidden="true">`)
					h.Text(a.Icon)
					h.Raw("</span>")
				}
				h.Text(a.Title)
				h.Raw("</a></li>")
			}
			h.Raw("</ul></nav>")

			if current != nil {
				h.Raw(`<article class="prose max-w-none rounded-xl border border-slate-200 bg-white p-8"><h2>`)
				h.Text(current.Title)
				h.Raw(`</h2><p class="text-xs text-slate-500">Last updated `)
				h.Text(current.LastUpdated)
				h.Raw("</p>")
				// Rendered from our own markdown files.
				h.Component(ctx, templ.Raw(current.Content))
				h.Raw("</article>")
			}
			h.Raw("</div>")
			return h.Err()
		}),
	))
}
