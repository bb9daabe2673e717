package web

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/mmynk/rsvp/internal/countdown"
	"github.com/mmynk/rsvp/internal/gesture"
	"github.com/mmynk/rsvp/internal/models"
	"github.com/mmynk/rsvp/internal/roster"
	"github.com/mmynk/rsvp/internal/rsvp"
)

const (
	validationMessage = "Te rugăm să completezi toate numele!"
	errorMessage      = "Ceva nu a funcționat. Te rugăm să încerci din nou."
	introText         = "Suntem onorați să vă avem alături. Vă rugăm să ne confirmați prezența completând detaliile de mai jos."
)

// PageData is everything the RSVP page renders.
type PageData struct {
	Event      models.Event
	State      *rsvp.State
	Remaining  countdown.Parts
	ResetAfter time.Duration
}

// RSVPPage is the full invitation page for one event.
func RSVPPage(d PageData) templ.Component {
	meta := Meta{
		Title:       d.Event.Title,
		Description: d.Event.Description,
		Image:       d.Event.Image,
		ImageAlt:    d.Event.ImageAlt,
		ImageW:      d.Event.ImageW,
		ImageH:      d.Event.ImageH,
		Locale:      d.Event.Locale,
	}
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.render(ctx, hero(d.Event, d.Remaining))
		h.raw(`<main id="rsvp">`)
		h.render(ctx, rsvpForm(d))
		h.raw(`</main><footer class="footer">`)
		h.text(d.Event.Copyright)
		h.raw(`</footer><script>`)
		h.raw(script)
		h.raw(`</script>`)
	})
	return Layout(meta, body)
}

func hero(e models.Event, left countdown.Parts) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<header class="hero"><p class="eyebrow">Save the Date</p><h1>`)
		h.text(e.Couple[0])
		h.raw(` <span class="amp">&amp;</span> `)
		h.text(e.Couple[1])
		h.raw(`</h1><p class="date">`)
		h.text(fmt.Sprintf("%s, %d %s %d", weekdayName(e.Date), e.Date.Day(), monthName(e.Date), e.Date.Year()))
		h.raw(`</p><a class="venue" target="_blank" rel="noopener" href="`)
		h.text(e.MapURL)
		h.raw(`">📍 `)
		h.text(e.Venue)
		h.raw(`</a>`)
		if e.Image != "" {
			h.raw(`<img class="hero-image" src="`)
			h.text(e.Image)
			h.raw(`" alt="`)
			h.text(e.ImageAlt)
			h.rawf(`" width="%d" height="%d">`, e.ImageW, e.ImageH)
		}

		h.raw(`<div class="countdown" data-countdown="/`)
		h.text(e.Slug)
		h.raw(`/countdown">`)
		for _, u := range []struct {
			key, label string
			value      int
		}{
			{"days", "Zile", left.Days},
			{"hours", "Ore", left.Hours},
			{"minutes", "Minute", left.Minutes},
			{"seconds", "Secunde", left.Seconds},
		} {
			h.rawf(`<div class="cd-unit"><span class="cd-value" data-unit="%s">%02d</span><span class="cd-label">%s</span></div>`, u.key, u.value, u.label)
		}
		h.raw(`</div></header>`)
	})
}

func rsvpForm(d PageData) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		s := d.State
		h.raw(`<form class="rsvp-form" method="post" action="/`)
		h.text(d.Event.Slug)
		h.raw(`" data-status="`)
		h.text(string(s.Status))
		h.raw(`"`)
		if s.Status.Settled() && d.ResetAfter > 0 {
			h.rawf(` data-reset-after="%d"`, d.ResetAfter.Milliseconds())
		}
		h.raw(`>`)
		h.raw(`<input type="hidden" name="view_id" value="`)
		h.text(s.ViewID)
		h.raw(`"><input type="hidden" name="status" value="`)
		h.text(string(s.Status))
		h.rawf(`"><input type="hidden" name="count" value="%d">`, s.Count)
		// Implicit submission (Enter in a text field) clicks the first submit button.
		h.raw(`<button type="submit" name="action" value="refresh" hidden tabindex="-1"></button>`)

		h.raw(`<h2>Confirmare Prezență</h2><p class="intro">`)
		h.text(introText)
		h.raw(`</p>`)

		h.render(ctx, counter(s.Count, s.Offset))
		h.raw(`<div class="guests">`)
		for i, g := range s.Guests {
			h.render(ctx, guestCard(i, g, s.Invalid))
		}
		h.raw(`</div>`)
		h.render(ctx, submitArea(s))
		h.raw(`</form>`)
	})
}

func counter(count int, offset float64) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		w := float64(gesture.DefaultItemWidth)
		h.rawf(`<section class="counter" data-item-width="%d">`, gesture.DefaultItemWidth)
		h.raw(`<p class="counter-label">Selectează numărul de persoane</p><div class="counter-row">`)
		h.raw(`<button type="submit" class="step" name="action" value="step:-1" aria-label="Mai puțini"`)
		if !gesture.CanDecrement(count) {
			h.raw(` disabled`)
		}
		h.raw(`>−</button><div class="track-window">`)
		px := formatPx(gesture.TrackOffset(count, w, offset))
		h.rawf(`<div class="track" data-base="%s" style="transform: translateX(calc(50%% + %spx))">`, px, px)
		for n := gesture.MinCount; n <= gesture.MaxCount; n++ {
			dist := n - count
			class := "num"
			if dist == 0 {
				class += " active"
			}
			h.rawf(`<button type="submit" class="%s" name="action" value="select:%d" style="width:%dpx;opacity:%s;transform:scale(%s)">%d</button>`,
				class, n, gesture.DefaultItemWidth,
				strconv.FormatFloat(gesture.Opacity(dist), 'f', 2, 64),
				strconv.FormatFloat(gesture.Scale(dist), 'f', 2, 64), n)
		}
		h.raw(`</div></div><button type="submit" class="step" name="action" value="step:1" aria-label="Mai mulți"`)
		if !gesture.CanIncrement(count) {
			h.raw(` disabled`)
		}
		h.raw(`>+</button></div><div class="dots">`)
		for n := gesture.MinCount; n <= gesture.MaxCount; n++ {
			if n == count {
				h.raw(`<span class="dot active"></span>`)
			} else {
				h.raw(`<span class="dot"></span>`)
			}
		}
		h.raw(`</div><p class="hint">Glisează pentru a alege</p>`)
		h.raw(`<input type="hidden" name="gesture" value=""><input type="hidden" name="dx" value="0">`)
		h.raw(`</section>`)
	})
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func guestCard(i int, g models.Guest, invalid *roster.ValidationError) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.rawf(`<div class="card"><h3><span class="badge">%d</span> Invitat</h3>`, i+1)
		textInput(h, i, roster.FieldLastName, "Nume de familie", "ex: Popescu", g.LastName, invalid.Has(i, roster.FieldLastName))
		textInput(h, i, roster.FieldFirstName, "Prenume", "ex: Andrei", g.FirstName, invalid.Has(i, roster.FieldFirstName))

		h.raw(`<div class="selectors">`)
		choice(h, i, roster.FieldAgeCategory, "Vârstă", string(g.AgeCategory), []option{
			{string(models.AgeAdult), "Adult"},
			{string(models.AgeChild), "Copil"},
		})
		choice(h, i, roster.FieldMenu, "Meniu", string(g.Menu), []option{
			{string(models.MenuMeat), "Carne"},
			{string(models.MenuVegetarian), "Veg."},
		})
		h.raw(`</div></div>`)
	})
}

func textInput(h *htmlWriter, i int, f roster.Field, label, placeholder, value string, invalid bool) {
	h.raw(`<label class="field`)
	if invalid {
		h.raw(` invalid`)
	}
	h.raw(`"><span>`)
	h.text(label)
	h.raw(`</span><input type="text" name="`)
	h.text(guestInputName(i, f))
	h.raw(`" value="`)
	h.text(value)
	h.raw(`" placeholder="`)
	h.text(placeholder)
	h.raw(`"`)
	if invalid {
		h.raw(` aria-invalid="true"`)
	}
	h.raw(`></label>`)
}

type option struct {
	value, label string
}

func choice(h *htmlWriter, i int, f roster.Field, label, current string, opts []option) {
	h.raw(`<div class="choice"><span>`)
	h.text(label)
	h.raw(`</span><input type="hidden" name="`)
	h.text(guestInputName(i, f))
	h.raw(`" value="`)
	h.text(current)
	h.raw(`"><div class="toggle">`)
	for _, o := range opts {
		class := "opt"
		if o.value == current {
			class += " active"
		}
		h.rawf(`<button type="submit" class="%s" name="action" value="update:%d:%s:%s">`, class, i, f, o.value)
		h.text(o.label)
		h.raw(`</button>`)
	}
	h.raw(`</div></div>`)
}

func submitArea(s *rsvp.State) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="submit-area">`)
		if s.Invalid != nil {
			h.raw(`<div class="banner" role="alert"><span>`)
			h.text(validationMessage)
			h.raw(`</span><button type="submit" class="banner-close" name="action" value="dismiss" aria-label="Închide">×</button></div>`)
		}

		switch s.Status {
		case models.StatusSuccess:
			h.raw(`<div class="success"><h3>Mulțumim!</h3><p>Confirmarea a fost trimisă cu succes.</p>`)
			h.raw(`<button type="submit" class="link" name="action" value="dismiss">Trimite încă o confirmare</button></div>`)
		default:
			if s.Status == models.StatusError {
				h.raw(`<p class="error" role="alert">`)
				h.text(errorMessage)
				h.raw(`</p>`)
			}
			h.raw(`<button type="submit" class="primary" name="action" value="submit" data-submit`)
			if s.Status == models.StatusSubmitting {
				h.raw(` disabled`)
			}
			h.raw(`>CONFIRMĂ PREZENȚA</button>`)
		}
		h.raw(`</div>`)
	})
}
