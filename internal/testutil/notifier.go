package testutil

import (
	"context"
	"sync"

	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/notification"
)

var _ notification.Dispatcher = (*RecordingDispatcher)(nil)

// RecordingDispatcher captures dispatched events for assertions. Set
// FailNext to simulate a downstream outage on the next dispatch.
type RecordingDispatcher struct {
	mu       sync.Mutex
	events   []*notification.Event
	FailNext bool
}

// NewRecordingDispatcher creates a new recording dispatcher
func NewRecordingDispatcher() *RecordingDispatcher {
	return &RecordingDispatcher{events: make([]*notification.Event, 0)}
}

func (d *RecordingDispatcher) Dispatch(_ context.Context, event *notification.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.FailNext {
		d.FailNext = false
		return ierr.NewError("notification dispatch rejected").
			WithHint("Notification service rejected the dispatch").
			Mark(ierr.ErrDownstream)
	}

	d.events = append(d.events, event)
	return nil
}

// Events returns a copy of everything dispatched so far
func (d *RecordingDispatcher) Events() []*notification.Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*notification.Event, len(d.events))
	copy(out, d.events)
	return out
}

// Clear drops all recorded events
func (d *RecordingDispatcher) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = d.events[:0]
}
