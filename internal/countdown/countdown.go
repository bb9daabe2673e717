// Package countdown computes the time left until the event.
package countdown

import (
	"context"
	"time"
)

// Parts is a remaining duration split for display.
type Parts struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Passed  bool `json:"passed"`
}

// Remaining returns the time from now until at. Once at is reached every part is zero.
func Remaining(now, at time.Time) Parts {
	d := at.Sub(now)
	if d <= 0 {
		return Parts{Passed: true}
	}
	total := int(d / time.Second)
	return Parts{
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

// Run calls emit with the remaining time immediately and then on every tick
// until ctx is done or the event has passed. The ticker is stopped on return.
func Run(ctx context.Context, now func() time.Time, at time.Time, every time.Duration, emit func(Parts) error) error {
	if now == nil {
		now = time.Now
	}
	if every <= 0 {
		every = time.Second
	}

	p := Remaining(now(), at)
	if err := emit(p); err != nil || p.Passed {
		return err
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p := Remaining(now(), at)
			if err := emit(p); err != nil {
				return err
			}
			if p.Passed {
				return nil
			}
		}
	}
}
