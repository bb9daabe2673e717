package web

import (
	"context"

	"github.com/a-h/templ"
)

// Meta is the document head of a page.
type Meta struct {
	Title       string
	Description string
	Image       string
	ImageAlt    string
	ImageW      int
	ImageH      int
	Locale      string
}

// Layout wraps body in the document shell with OpenGraph and Twitter cards.
func Layout(meta Meta, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="ro"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(meta.Title)
		h.raw(`</title>`)
		if meta.Description != "" {
			h.raw(`<meta name="description" content="`)
			h.text(meta.Description)
			h.raw(`">`)
		}
		h.raw(`<meta property="og:type" content="website"><meta property="og:title" content="`)
		h.text(meta.Title)
		h.raw(`">`)
		if meta.Description != "" {
			h.raw(`<meta property="og:description" content="`)
			h.text(meta.Description)
			h.raw(`">`)
		}
		if meta.Locale != "" {
			h.raw(`<meta property="og:locale" content="`)
			h.text(meta.Locale)
			h.raw(`">`)
		}
		if meta.Image != "" {
			h.raw(`<meta property="og:image" content="`)
			h.text(meta.Image)
			h.rawf(`"><meta property="og:image:width" content="%d"><meta property="og:image:height" content="%d">`, meta.ImageW, meta.ImageH)
			h.raw(`<meta property="og:image:alt" content="`)
			h.text(meta.ImageAlt)
			h.raw(`"><meta name="twitter:card" content="summary_large_image"><meta name="twitter:image" content="`)
			h.text(meta.Image)
			h.raw(`">`)
		}
		h.raw(`<meta name="twitter:title" content="`)
		h.text(meta.Title)
		h.raw(`"><meta name="twitter:description" content="`)
		h.text(meta.Description)
		h.raw(`"><style>`)
		h.raw(stylesheet)
		h.raw(`</style></head><body>`)
		h.render(ctx, body)
		h.raw(`</body></html>`)
	})
}

// Landing is the root page. It only links to the invitation.
func Landing(target string) templ.Component {
	body := component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<main class="landing"><a class="landing-link" href="/`)
		h.text(target)
		h.raw(`">Nunta</a></main>`)
	})
	return Layout(Meta{Title: "Nunta", Locale: "ro_RO"}, body)
}

// ErrorPage is a minimal page for unknown routes and broken forms.
func ErrorPage(title, message string) templ.Component {
	body := component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<main class="landing"><div class="error-page"><h1>`)
		h.text(title)
		h.raw(`</h1><p>`)
		h.text(message)
		h.raw(`</p><a href="/">Înapoi</a></div></main>`)
	})
	return Layout(Meta{Title: title, Locale: "ro_RO"}, body)
}
