package models

// Response represents one RSVP received by the sheet stand-in.
type Response struct {
	// ID is the unique identifier for the response (UUID format).
	ID string `json:"id"`

	// Guests is the roster as it was posted.
	Guests []Guest `json:"guests"`

	// ReceivedAt is the Unix timestamp when the response was stored.
	ReceivedAt int64 `json:"receivedAt"`
}
