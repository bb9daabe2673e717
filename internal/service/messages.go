package service

import (
	"github.com/mmynk/rsvp/internal/models"
	"github.com/mmynk/rsvp/internal/roster"
)

type ResizeRequest struct {
	Guests models.Roster `json:"guests"`
	Count  int           `json:"count"`
}

type RosterResponse struct {
	Count  int           `json:"count"`
	Guests models.Roster `json:"guests"`
}

type ReleaseRequest struct {
	Count     int     `json:"count"`
	Dx        float64 `json:"dx"`
	ItemWidth float64 `json:"itemWidth,omitempty"`
}

type CountResponse struct {
	Count        int  `json:"count"`
	Delta        int  `json:"delta"`
	CanIncrement bool `json:"canIncrement"`
	CanDecrement bool `json:"canDecrement"`
}

type UpdateGuestRequest struct {
	Guests models.Roster `json:"guests"`
	Index  int           `json:"index"`
	Field  roster.Field  `json:"field"`
	Value  string        `json:"value"`
}

type ValidateRequest struct {
	Guests models.Roster `json:"guests"`
}

type ValidateResponse struct {
	Valid   bool                `json:"valid"`
	Invalid []roster.FieldError `json:"invalid,omitempty"`
}

type SubmitRequest struct {
	// ViewID identifies the page view; a second submit for the same view while
	// one is in flight is rejected.
	ViewID string        `json:"viewId"`
	Guests models.Roster `json:"guests"`
}

type SubmitResponse struct {
	Status  models.SubmissionStatus `json:"status"`
	Summary roster.Summary          `json:"summary"`
}
