package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/rsvp/internal/metrics"
	"github.com/mmynk/rsvp/internal/models"
	"github.com/mmynk/rsvp/internal/roster"
)

var (
	// ErrInFlight is returned when a submission is already being sent.
	ErrInFlight = errors.New("submission already in flight")

	// ErrTransport wraps every failure of the sender.
	ErrTransport = errors.New("submission failed")
)

// Pipeline runs the submit flow of one page view and owns its status.
//
// A Pipeline is created per request from the status the page posted back, so
// its in-flight check only covers callers sharing one Pipeline. Double posts
// of the same page view across requests are rejected by Guard. Returning a
// settled page to idle after a delay is scheduled by the page itself.
type Pipeline struct {
	sender  Sender
	timeout time.Duration

	mu     sync.Mutex
	status models.SubmissionStatus
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTimeout bounds each send. A send that exceeds it ends in the error state.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.timeout = d }
}

// WithStatus resumes a page view in the given status. A view cannot resume
// mid-flight, so submitting resumes as idle.
func WithStatus(s models.SubmissionStatus) Option {
	return func(p *Pipeline) {
		if s.Valid() && s != models.StatusSubmitting {
			p.status = s
		}
	}
}

// New creates an idle pipeline sending through sender.
func New(sender Sender, opts ...Option) *Pipeline {
	p := &Pipeline{sender: sender, status: models.StatusIdle}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Status returns the current status.
func (p *Pipeline) Status() models.SubmissionStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Submit validates guests and sends them.
//
// A *roster.ValidationError is returned as-is and nothing is sent. While a send is
// in flight further calls return ErrInFlight. Sender failures are wrapped in
// ErrTransport and leave the pipeline in the error state.
func (p *Pipeline) Submit(ctx context.Context, guests models.Roster) error {
	if err := roster.Validate(guests); err != nil {
		metrics.RecordSubmission(metrics.OutcomeInvalid, len(guests))
		return err
	}

	p.mu.Lock()
	if p.status == models.StatusSubmitting {
		p.mu.Unlock()
		metrics.RecordSubmission(metrics.OutcomeInFlight, len(guests))
		return ErrInFlight
	}
	p.dismissLocked()
	p.setLocked(models.StatusSubmitting)
	p.mu.Unlock()

	sendCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err := p.sender.Send(sendCtx, Payload{Guests: guests.Clone()})

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		slog.Warn("submission failed", "guests", len(guests), "error", err)
		metrics.RecordSubmission(metrics.OutcomeError, len(guests))
		p.setLocked(models.StatusError)
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	slog.Info("submission sent", "guests", len(guests))
	metrics.RecordSubmission(metrics.OutcomeSuccess, len(guests))
	p.setLocked(models.StatusSuccess)
	return nil
}

// Dismiss returns a settled pipeline to idle. It is a no-op in any other state.
func (p *Pipeline) Dismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dismissLocked()
}

func (p *Pipeline) dismissLocked() {
	if !p.status.Settled() {
		return
	}
	p.setLocked(models.StatusIdle)
}

func (p *Pipeline) setLocked(s models.SubmissionStatus) {
	if !models.CanTransition(p.status, s) {
		// Unreachable through the exported methods.
		panic(fmt.Sprintf("submission: illegal transition %s -> %s", p.status, s))
	}
	p.status = s
}
