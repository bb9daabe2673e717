// Package service exposes the RSVP operations as a Connect JSON API.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/rsvp/internal/gesture"
	"github.com/mmynk/rsvp/internal/roster"
	"github.com/mmynk/rsvp/internal/submission"
)

const (
	// ServiceName is the fully-qualified name of the RSVP service.
	ServiceName = "rsvp.v1.RSVPService"

	ResizeProcedure      = "/" + ServiceName + "/Resize"
	ReleaseProcedure     = "/" + ServiceName + "/Release"
	UpdateGuestProcedure = "/" + ServiceName + "/UpdateGuest"
	ValidateProcedure    = "/" + ServiceName + "/Validate"
	SubmitProcedure      = "/" + ServiceName + "/Submit"
)

// RSVPService implements the roster, counter and submit procedures.
type RSVPService struct {
	sender  submission.Sender
	timeout time.Duration
	guard   *submission.Guard
}

// NewRSVPService creates a service that submits through sender. guard is shared
// with the HTML handlers so a page view cannot submit twice at once.
func NewRSVPService(sender submission.Sender, timeout time.Duration, guard *submission.Guard) *RSVPService {
	if guard == nil {
		guard = &submission.Guard{}
	}
	return &RSVPService{sender: sender, timeout: timeout, guard: guard}
}

// Resize reconciles the roster with a new guest count.
func (s *RSVPService) Resize(ctx context.Context, req *connect.Request[ResizeRequest]) (*connect.Response[RosterResponse], error) {
	guests := roster.Reconcile(req.Msg.Guests, req.Msg.Count)
	return connect.NewResponse(&RosterResponse{Count: len(guests), Guests: guests}), nil
}

// Release turns a finished drag into a committed count.
func (s *RSVPService) Release(ctx context.Context, req *connect.Request[ReleaseRequest]) (*connect.Response[CountResponse], error) {
	current := gesture.Clamp(req.Msg.Count)
	next := gesture.Release(current, req.Msg.Dx, req.Msg.ItemWidth)
	slog.Debug("drag released", "dx", req.Msg.Dx, "from", current, "to", next)
	return connect.NewResponse(&CountResponse{
		Count:        next,
		Delta:        next - current,
		CanIncrement: gesture.CanIncrement(next),
		CanDecrement: gesture.CanDecrement(next),
	}), nil
}

// UpdateGuest replaces one field of one guest.
func (s *RSVPService) UpdateGuest(ctx context.Context, req *connect.Request[UpdateGuestRequest]) (*connect.Response[RosterResponse], error) {
	guests, err := roster.UpdateField(req.Msg.Guests, req.Msg.Index, req.Msg.Field, req.Msg.Value)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewResponse(&RosterResponse{Count: len(guests), Guests: guests}), nil
}

// Validate reports which names are missing without submitting.
func (s *RSVPService) Validate(ctx context.Context, req *connect.Request[ValidateRequest]) (*connect.Response[ValidateResponse], error) {
	err := roster.Validate(req.Msg.Guests)
	var verr *roster.ValidationError
	if errors.As(err, &verr) {
		return connect.NewResponse(&ValidateResponse{Valid: false, Invalid: verr.Fields}), nil
	}
	return connect.NewResponse(&ValidateResponse{Valid: true}), nil
}

// Submit validates and forwards the roster to the external endpoint.
func (s *RSVPService) Submit(ctx context.Context, req *connect.Request[SubmitRequest]) (*connect.Response[SubmitResponse], error) {
	if len(req.Msg.Guests) < gesture.MinCount || len(req.Msg.Guests) > gesture.MaxCount {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("guest count must be between %d and %d, got %d", gesture.MinCount, gesture.MaxCount, len(req.Msg.Guests)))
	}

	viewID := req.Msg.ViewID
	if viewID == "" {
		viewID = uuid.NewString()
	} else if _, err := uuid.Parse(viewID); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid view id: %w", err))
	}
	release, ok := s.guard.Acquire(viewID)
	if !ok {
		return nil, connect.NewError(connect.CodeAborted, submission.ErrInFlight)
	}
	defer release()

	p := submission.New(s.sender, submission.WithTimeout(s.timeout))
	err := p.Submit(ctx, req.Msg.Guests)

	var verr *roster.ValidationError
	switch {
	case errors.As(err, &verr):
		return nil, connect.NewError(connect.CodeInvalidArgument, verr)
	case err != nil:
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}

	return connect.NewResponse(&SubmitResponse{
		Status:  p.Status(),
		Summary: roster.Summarize(req.Msg.Guests),
	}), nil
}

// NewRSVPServiceHandler builds an HTTP handler for svc. The returned path is
// the prefix the handler must be mounted on.
func NewRSVPServiceHandler(svc *RSVPService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ResizeProcedure, connect.NewUnaryHandler(ResizeProcedure, svc.Resize, opts...))
	mux.Handle(ReleaseProcedure, connect.NewUnaryHandler(ReleaseProcedure, svc.Release, opts...))
	mux.Handle(UpdateGuestProcedure, connect.NewUnaryHandler(UpdateGuestProcedure, svc.UpdateGuest, opts...))
	mux.Handle(ValidateProcedure, connect.NewUnaryHandler(ValidateProcedure, svc.Validate, opts...))
	mux.Handle(SubmitProcedure, connect.NewUnaryHandler(SubmitProcedure, svc.Submit, opts...))
	return "/" + ServiceName + "/", mux
}
