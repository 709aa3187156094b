// Package calendar gives the scheduler a narrow contract to an external
// calendar: create one all-day event, get back an opaque identifier. The
// core never depends on the transport or auth mechanism behind it.
package calendar

import (
	"context"
	"errors"

	"github.com/abhi23s/productivity-tracker/internal/storage"
)

// EventCreator creates a single all-day event for a scheduled task.
type EventCreator interface {
	// Available reports whether the integration is configured at all.
	Available() bool

	// CreateAllDayEvent creates the event and returns its identifier.
	CreateAllDayEvent(ctx context.Context, title string, due storage.Date) (string, error)
}

// ErrNotConfigured is returned when no calendar integration is set up.
var ErrNotConfigured = errors.New("calendar integration is not configured")

// Disabled is the EventCreator used when no credentials are present.
type Disabled struct{}

func (Disabled) Available() bool { return false }

func (Disabled) CreateAllDayEvent(context.Context, string, storage.Date) (string, error) {
	return "", ErrNotConfigured
}
