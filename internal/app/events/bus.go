// Package events implements the change-notification bus. The facade
// publishes an event tag after every successful mutating operation so that
// outside callers (the UI) can refresh without the core knowing who they
// are.
package events

import (
	"github.com/rs/zerolog"
)

// Tag identifies what kind of data change happened.
type Tag string

const (
	TagAdd           Tag = "ADD"
	TagUpdate        Tag = "UPDATE"
	TagDelete        Tag = "DELETE"
	TagStudentUpdate Tag = "STUDENT_UPDATE"
	TagAttendance    Tag = "ATTENDANCE"
	TagPayment       Tag = "PAYMENT"
)

// Listener receives data-change notifications.
type Listener interface {
	OnDataChanged(tag Tag)
}

// Bus maintains the listener registry and broadcasts tags synchronously,
// in registration order, on the publisher's goroutine. There is no
// delivery isolation: a listener that panics aborts delivery to the
// listeners registered after it.
type Bus struct {
	listeners []Listener
	logger    zerolog.Logger
}

// NewBus creates an empty notification bus
func NewBus(logger zerolog.Logger) *Bus {
	return &Bus{logger: logger}
}

// Register adds a listener. Registering the same listener twice is a no-op.
func (b *Bus) Register(l Listener) {
	for _, existing := range b.listeners {
		if existing == l {
			return
		}
	}
	b.listeners = append(b.listeners, l)
}

// Unregister removes a listener, keeping registration order for the rest.
func (b *Bus) Unregister(l Listener) {
	for i, existing := range b.listeners {
		if existing == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Publish delivers tag to every registered listener in order.
func (b *Bus) Publish(tag Tag) {
	b.logger.Debug().Str("tag", string(tag)).Int("listeners", len(b.listeners)).Msg("Publishing data change event")
	for _, l := range b.listeners {
		l.OnDataChanged(tag)
	}
}
