// Package web serves the invitation pages. Every page view carries its own
// state in the form, so the handlers keep nothing between requests.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mmynk/rsvp/internal/countdown"
	"github.com/mmynk/rsvp/internal/gesture"
	"github.com/mmynk/rsvp/internal/metrics"
	"github.com/mmynk/rsvp/internal/models"
	"github.com/mmynk/rsvp/internal/roster"
	"github.com/mmynk/rsvp/internal/rsvp"
	"github.com/mmynk/rsvp/internal/submission"
)

// Handler serves the landing page, the invitation pages and their actions.
type Handler struct {
	events     map[string]models.Event
	landing    string
	sender     submission.Sender
	guard      *submission.Guard
	timeout    time.Duration
	resetAfter time.Duration
	staticPath string
	now        func() time.Time
	tick       time.Duration
}

// Option configures a Handler.
type Option func(*Handler)

// WithEvents replaces the served events. landing is the slug the root page links to.
func WithEvents(events map[string]models.Event, landing string) Option {
	return func(h *Handler) {
		h.events = events
		h.landing = landing
	}
}

// WithGuard shares the in-flight guard with other entry points.
func WithGuard(g *submission.Guard) Option {
	return func(h *Handler) { h.guard = g }
}

// WithSubmitTimeout bounds each submission.
func WithSubmitTimeout(d time.Duration) Option {
	return func(h *Handler) { h.timeout = d }
}

// WithResetAfter makes settled pages return to idle after d.
func WithResetAfter(d time.Duration) Option {
	return func(h *Handler) { h.resetAfter = d }
}

// WithStaticPath serves files under /static from dir.
func WithStaticPath(dir string) Option {
	return func(h *Handler) { h.staticPath = dir }
}

// WithClock replaces time.Now and the countdown tick.
func WithClock(now func() time.Time, tick time.Duration) Option {
	return func(h *Handler) {
		h.now = now
		h.tick = tick
	}
}

// NewHandler creates a Handler that submits through sender.
func NewHandler(sender submission.Sender, opts ...Option) *Handler {
	h := &Handler{
		events:  DefaultEvents(),
		landing: "kasiia",
		sender:  sender,
		guard:   &submission.Guard{},
		now:     time.Now,
		tick:    time.Second,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Routes returns the router of the web pages.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.handleLanding)
	r.Get("/healthz", handleHealth)
	if h.staticPath != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticPath))))
	}
	r.Route("/{event}", func(r chi.Router) {
		r.Get("/", h.handleShow)
		r.Post("/", h.handleAction)
		r.Get("/countdown", h.handleCountdown)
	})
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusOK, Landing(h.landing))
}

func (h *Handler) event(w http.ResponseWriter, r *http.Request) (models.Event, bool) {
	e, ok := h.events[chi.URLParam(r, "event")]
	if !ok {
		renderPage(w, r, http.StatusNotFound, ErrorPage("Pagina nu a fost găsită", "Invitația căutată nu există."))
	}
	return e, ok
}

func (h *Handler) page(e models.Event, s *rsvp.State) PageData {
	return PageData{
		Event:      e,
		State:      s,
		Remaining:  countdown.Remaining(h.now(), e.Date),
		ResetAfter: h.resetAfter,
	}
}

func (h *Handler) handleShow(w http.ResponseWriter, r *http.Request) {
	e, ok := h.event(w, r)
	if !ok {
		return
	}
	renderPage(w, r, http.StatusOK, RSVPPage(h.page(e, rsvp.Default())))
}

func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request) {
	e, ok := h.event(w, r)
	if !ok {
		return
	}
	state, err := decodeState(w, r)
	if err != nil {
		slog.Warn("Failed to decode form", "event", e.Slug, "error", err)
		renderPage(w, r, http.StatusBadRequest, ErrorPage("Cerere invalidă", "Formularul nu a putut fi citit."))
		return
	}

	status, err := h.apply(r, state, parseAction(r))
	if err != nil && status == http.StatusBadRequest {
		slog.Warn("Rejected form action", "event", e.Slug, "view_id", state.ViewID, "error", err)
	}
	renderPage(w, r, status, RSVPPage(h.page(e, state)))
}

// apply runs one action against state and returns the response status.
func (h *Handler) apply(r *http.Request, state *rsvp.State, a action) (int, error) {
	switch a.Name {
	case "", "refresh":
	case "count":
		n, err := a.intArg(0)
		if err != nil {
			return http.StatusBadRequest, err
		}
		state.SetCount(n)
	case "step":
		dir, err := a.intArg(0)
		if err != nil {
			return http.StatusBadRequest, err
		}
		state.Step(dir)
	case "select":
		n, err := a.intArg(0)
		if err != nil {
			return http.StatusBadRequest, err
		}
		state.Select(n)
	case "release":
		state.Release(parseFloat(r.PostFormValue("dx")), gesture.DefaultItemWidth)
	case "update":
		i, err := a.intArg(0)
		if err != nil {
			return http.StatusBadRequest, err
		}
		if len(a.Args) < 2 {
			return http.StatusBadRequest, errors.New("action update: missing field")
		}
		var value string
		if len(a.Args) > 2 {
			value = a.Args[2]
		}
		if err := state.Update(i, roster.Field(a.Args[1]), value); err != nil {
			return http.StatusBadRequest, err
		}
	case "submit":
		return h.submit(r, state)
	case "dismiss":
		state.Dismiss()
	default:
		return http.StatusBadRequest, fmt.Errorf("unknown action %q", a.Name)
	}
	return http.StatusOK, nil
}

func (h *Handler) submit(r *http.Request, state *rsvp.State) (int, error) {
	// Normalize replaces a malformed view id, which would dodge the guard.
	if _, err := uuid.Parse(r.PostFormValue("view_id")); err != nil {
		return http.StatusBadRequest, fmt.Errorf("submit: invalid view id: %w", err)
	}

	release, ok := h.guard.Acquire(state.ViewID)
	if !ok {
		metrics.RecordSubmission(metrics.OutcomeInFlight, len(state.Guests))
		return http.StatusConflict, submission.ErrInFlight
	}
	defer release()

	p := submission.New(h.sender,
		submission.WithTimeout(h.timeout),
		submission.WithStatus(state.Status),
	)
	err := state.Submit(r.Context(), p)

	var verr *roster.ValidationError
	switch {
	case err == nil:
		slog.Info("RSVP submitted", "view_id", state.ViewID, "guests", len(state.Guests))
		return http.StatusOK, nil
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, err
	default:
		slog.Error("Failed to submit RSVP", "view_id", state.ViewID, "error", err)
		return http.StatusBadGateway, err
	}
}

// handleCountdown streams the remaining time as server-sent events until the
// client goes away or the event starts.
func (h *Handler) handleCountdown(w http.ResponseWriter, r *http.Request) {
	e, ok := h.event(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	err := countdown.Run(r.Context(), h.now, e.Date, h.tick, func(p countdown.Parts) error {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil && !errors.Is(err, r.Context().Err()) {
		slog.Warn("Countdown stream ended", "event", e.Slug, "error", err)
	}
}
