package submission

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mmynk/rsvp/internal/models"
	"github.com/mmynk/rsvp/internal/roster"
)

func threeGuests() models.Roster {
	return models.Roster{
		{FirstName: "Ana", LastName: "Pop", AgeCategory: models.AgeAdult, Menu: models.MenuMeat},
		{FirstName: "Ion", LastName: "Pop", AgeCategory: models.AgeChild, Menu: models.MenuVegetarian},
		{FirstName: "Maria", LastName: "Pop", AgeCategory: models.AgeAdult, Menu: models.MenuVegetarian},
	}
}

// recordingServer captures the last request body and answers with status.
func recordingServer(t *testing.T, status int) (*httptest.Server, *[]byte, *atomic.Int32) {
	t.Helper()
	var body []byte
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		body = b
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &body, &calls
}

func TestSubmitSuccessRoundTrip(t *testing.T) {
	srv, body, calls := recordingServer(t, http.StatusOK)
	p := New(NewHTTPSender(srv.URL, FireAndForget))

	if p.Status() != models.StatusIdle {
		t.Fatalf("initial status = %s, want idle", p.Status())
	}
	if err := p.Submit(context.Background(), threeGuests()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if p.Status() != models.StatusSuccess {
		t.Errorf("status = %s, want success", p.Status())
	}
	if calls.Load() != 1 {
		t.Errorf("endpoint calls = %d, want 1", calls.Load())
	}

	var got Payload
	if err := json.Unmarshal(*body, &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got.Guests) != 3 {
		t.Fatalf("guests in body = %d, want 3", len(got.Guests))
	}
	if !reflect.DeepEqual(models.Roster(got.Guests), threeGuests()) {
		t.Errorf("body guests = %+v, want %+v", got.Guests, threeGuests())
	}
}

func TestSubmitValidationFailureSendsNothing(t *testing.T) {
	srv, _, calls := recordingServer(t, http.StatusOK)
	p := New(NewHTTPSender(srv.URL, FireAndForget))

	guests := threeGuests()
	guests[1].FirstName = "   "

	err := p.Submit(context.Background(), guests)
	var verr *roster.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *roster.ValidationError", err)
	}
	if !verr.Has(1, roster.FieldFirstName) {
		t.Errorf("validation error does not point at guest 2 first name: %+v", verr.Fields)
	}
	if calls.Load() != 0 {
		t.Errorf("endpoint calls = %d, want 0", calls.Load())
	}
	if p.Status() != models.StatusIdle {
		t.Errorf("status = %s, want idle", p.Status())
	}
}

func TestSubmitModes(t *testing.T) {
	tests := []struct {
		name       string
		mode       Mode
		status     int
		wantErr    bool
		wantStatus models.SubmissionStatus
	}{
		{"fire-and-forget ignores server error", FireAndForget, http.StatusInternalServerError, false, models.StatusSuccess},
		{"fire-and-forget ok", FireAndForget, http.StatusOK, false, models.StatusSuccess},
		{"strict ok", Strict, http.StatusOK, false, models.StatusSuccess},
		{"strict rejects server error", Strict, http.StatusInternalServerError, true, models.StatusError},
		{"strict rejects bad request", Strict, http.StatusBadRequest, true, models.StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, _ := recordingServer(t, tt.status)
			p := New(NewHTTPSender(srv.URL, tt.mode))
			err := p.Submit(context.Background(), threeGuests())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Submit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrTransport) || !errors.Is(err, ErrRejected) {
					t.Errorf("err = %v, want ErrTransport wrapping ErrRejected", err)
				}
			}
			if p.Status() != tt.wantStatus {
				t.Errorf("status = %s, want %s", p.Status(), tt.wantStatus)
			}
		})
	}
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := New(NewHTTPSender(url, FireAndForget))
	err := p.Submit(context.Background(), threeGuests())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("err = %v, want ErrTransport", err)
	}
	if p.Status() != models.StatusError {
		t.Errorf("status = %s, want error", p.Status())
	}

	// The user may retry by resubmitting.
	p.sender = SenderFunc(func(context.Context, Payload) error { return nil })
	if err := p.Submit(context.Background(), threeGuests()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if p.Status() != models.StatusSuccess {
		t.Errorf("status after retry = %s, want success", p.Status())
	}
}

func TestSubmitInFlight(t *testing.T) {
	started := make(chan struct{})
	unblock := make(chan struct{})
	var sends atomic.Int32
	p := New(SenderFunc(func(ctx context.Context, _ Payload) error {
		sends.Add(1)
		close(started)
		<-unblock
		return nil
	}))

	done := make(chan error, 1)
	go func() { done <- p.Submit(context.Background(), threeGuests()) }()

	<-started
	if p.Status() != models.StatusSubmitting {
		t.Errorf("status during send = %s, want submitting", p.Status())
	}
	if err := p.Submit(context.Background(), threeGuests()); !errors.Is(err, ErrInFlight) {
		t.Errorf("concurrent Submit err = %v, want ErrInFlight", err)
	}

	close(unblock)
	if err := <-done; err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}
	if sends.Load() != 1 {
		t.Errorf("sends = %d, want 1", sends.Load())
	}
}

func TestSubmitTimeout(t *testing.T) {
	p := New(SenderFunc(func(ctx context.Context, _ Payload) error {
		<-ctx.Done()
		return ctx.Err()
	}), WithTimeout(20*time.Millisecond))

	err := p.Submit(context.Background(), threeGuests())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if p.Status() != models.StatusError {
		t.Errorf("status = %s, want error", p.Status())
	}
}

func TestDismiss(t *testing.T) {
	p := New(SenderFunc(func(context.Context, Payload) error { return nil }))

	p.Dismiss()
	if p.Status() != models.StatusIdle {
		t.Fatalf("Dismiss on idle changed status to %s", p.Status())
	}

	if err := p.Submit(context.Background(), threeGuests()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	p.Dismiss()
	if p.Status() != models.StatusIdle {
		t.Errorf("status = %s, want idle", p.Status())
	}
}

func TestResubmitFromSettledStatus(t *testing.T) {
	var fail atomic.Bool
	p := New(SenderFunc(func(context.Context, Payload) error {
		if fail.Load() {
			return errors.New("connection refused")
		}
		return nil
	}))

	if err := p.Submit(context.Background(), threeGuests()); err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}
	if err := p.Submit(context.Background(), threeGuests()); err != nil {
		t.Fatalf("second Submit failed: %v", err)
	}
	if p.Status() != models.StatusSuccess {
		t.Fatalf("status after resubmit = %s, want success", p.Status())
	}

	fail.Store(true)
	if err := p.Submit(context.Background(), threeGuests()); !errors.Is(err, ErrTransport) {
		t.Fatalf("err = %v, want ErrTransport", err)
	}
	if p.Status() != models.StatusError {
		t.Fatalf("status = %s, want error", p.Status())
	}

	// A settled status stays until it is dismissed or resubmitted.
	time.Sleep(20 * time.Millisecond)
	if p.Status() != models.StatusError {
		t.Errorf("status changed on its own to %s", p.Status())
	}
}

func TestWithStatus(t *testing.T) {
	if got := New(nil, WithStatus(models.StatusError)).Status(); got != models.StatusError {
		t.Errorf("resumed status = %s, want error", got)
	}
	if got := New(nil, WithStatus(models.StatusSubmitting)).Status(); got != models.StatusIdle {
		t.Errorf("submitting resumed as %s, want idle", got)
	}
	if got := New(nil, WithStatus("bogus")).Status(); got != models.StatusIdle {
		t.Errorf("unknown status resumed as %s, want idle", got)
	}
}
