// Package calendar defines the event model and the backend store
// capability the assistant dispatches against.
package calendar

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a search or delete matched no event.
// Callers treat it as a normal "nothing to do" outcome.
var ErrNotFound = errors.New("calendar: event not found")

// Event is the subset of a calendar event this system reads and writes.
// All-day events carry date-only start/end and AllDay set.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	TimeZone    string
	Recurrence  []string
}

// ListOptions bounds a list call. Zero From/To leave that side open.
type ListOptions struct {
	From       time.Time
	To         time.Time
	Query      string
	MaxResults int64
}

// Store is the calendar backend. Every call is a single unretried
// round trip; cancellation and deadlines come from ctx.
type Store interface {
	List(ctx context.Context, opts ListOptions) ([]Event, error)
	Insert(ctx context.Context, ev Event) (Event, error)
	Update(ctx context.Context, eventID string, ev Event) (Event, error)
	Delete(ctx context.Context, eventID string) error
}
