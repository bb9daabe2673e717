// Package rsvp holds the application state of one RSVP page view and the
// operations that are allowed to change it.
package rsvp

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mmynk/rsvp/internal/gesture"
	"github.com/mmynk/rsvp/internal/metrics"
	"github.com/mmynk/rsvp/internal/models"
	"github.com/mmynk/rsvp/internal/roster"
	"github.com/mmynk/rsvp/internal/submission"
)

// State is everything one page view knows. It travels with the page and is
// never stored on the server.
//
// Invariant: len(Guests) == Count after every operation.
type State struct {
	// ViewID identifies the page view for in-flight submission tracking.
	ViewID string `json:"viewId"`

	Count  int                     `json:"count"`
	Guests models.Roster           `json:"guests"`
	Status models.SubmissionStatus `json:"status"`

	// Offset is the visual drag displacement of the counter track in pixels.
	Offset float64 `json:"offset,omitempty"`

	// Invalid is set by a failed submit so the view can highlight fields.
	Invalid *roster.ValidationError `json:"-"`

	drag *gesture.Drag
}

// Default returns the state of a fresh page load: two blank guests.
func Default() *State {
	return &State{
		ViewID: uuid.NewString(),
		Count:  roster.DefaultCount,
		Guests: roster.New(roster.DefaultCount),
		Status: models.StatusIdle,
	}
}

// Normalize repairs a state decoded from an untrusted source so that the
// invariants hold again.
func (s *State) Normalize() {
	if _, err := uuid.Parse(s.ViewID); err != nil {
		s.ViewID = uuid.NewString()
	}
	if s.Count == 0 {
		s.Count = len(s.Guests)
	}
	s.Count = gesture.Clamp(s.Count)
	for i := range s.Guests {
		if !s.Guests[i].AgeCategory.Valid() {
			s.Guests[i].AgeCategory = models.AgeAdult
		}
		if !s.Guests[i].Menu.Valid() {
			s.Guests[i].Menu = models.MenuMeat
		}
	}
	s.Guests = roster.Reconcile(s.Guests, s.Count)
	if !s.Status.Valid() || s.Status == models.StatusSubmitting {
		s.Status = models.StatusIdle
	}
	s.Offset = 0
	s.drag = nil
}

// SetCount commits a new guest count and reconciles the roster.
func (s *State) SetCount(n int) {
	s.commit(n, "set")
}

// Step applies the increment (dir > 0) or decrement (dir < 0) control.
func (s *State) Step(dir int) {
	s.commit(gesture.Step(s.Count, dir), "step")
}

// Select commits a clicked number.
func (s *State) Select(n int) {
	s.commit(gesture.Select(n), "select")
}

// DragStart begins a drag of the counter track at pointer position x.
func (s *State) DragStart(x, itemWidth float64) {
	s.drag = gesture.NewDrag(itemWidth)
	s.drag.Start(x)
	s.Offset = 0
}

// DragMove records the pointer at x. Only the visual offset changes.
func (s *State) DragMove(x float64) {
	if s.drag == nil {
		return
	}
	s.drag.Move(x)
	s.Offset = s.drag.Offset()
}

// DragEnd commits the count proposed by the active drag.
func (s *State) DragEnd() {
	if s.drag == nil {
		return
	}
	n := s.drag.End(s.Count)
	s.drag = nil
	s.Offset = 0
	s.commit(n, "release")
}

// Release applies a finished drag of dx pixels in one step.
func (s *State) Release(dx, itemWidth float64) {
	s.DragStart(0, itemWidth)
	s.DragMove(dx)
	s.DragEnd()
}

func (s *State) commit(n int, kind string) {
	n = gesture.Clamp(n)
	if n != s.Count {
		metrics.RecordCountChange(kind)
	}
	s.Count = n
	s.Guests = roster.Reconcile(s.Guests, n)
}

// Update replaces one field of one guest.
func (s *State) Update(index int, field roster.Field, value string) error {
	guests, err := roster.UpdateField(s.Guests, index, field, value)
	if err != nil {
		return err
	}
	s.Guests = guests
	return nil
}

// Submit runs the submit flow through p. The resulting status is copied into
// the state; validation failures are kept in Invalid.
func (s *State) Submit(ctx context.Context, p *submission.Pipeline) error {
	s.Invalid = nil
	err := p.Submit(ctx, s.Guests)
	s.Status = p.Status()

	var verr *roster.ValidationError
	if errors.As(err, &verr) {
		s.Invalid = verr
	}
	return err
}

// Dismiss returns a settled submission to idle so another RSVP can be sent.
func (s *State) Dismiss() {
	s.Invalid = nil
	if s.Status.Settled() {
		s.Status = models.StatusIdle
	}
}

// Summary counts the current guests.
func (s *State) Summary() roster.Summary {
	return roster.Summarize(s.Guests)
}
