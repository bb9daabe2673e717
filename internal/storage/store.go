// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/rsvp/internal/models"
)

// ErrNotFound is returned when a response does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for RSVP response storage used by the sheet endpoint.
// The RSVP page itself never stores anything.
type Store interface {
	// CreateResponse persists a new response.
	// The ID and ReceivedAt fields are populated by the store when empty.
	CreateResponse(ctx context.Context, resp *models.Response) error

	// GetResponse retrieves a response by its ID.
	// Returns ErrNotFound if the response does not exist.
	GetResponse(ctx context.Context, id string) (*models.Response, error)

	// ListResponses returns every response, oldest first.
	ListResponses(ctx context.Context) ([]*models.Response, error)

	// Close releases any resources held by the store.
	Close() error
}
