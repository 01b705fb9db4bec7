package events

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	name string
	log  *[]string
}

func (l *recordingListener) OnDataChanged(tag Tag) {
	*l.log = append(*l.log, l.name+":"+string(tag))
}

func TestPublishDeliversInRegistrationOrder(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var log []string
	first := &recordingListener{name: "first", log: &log}
	second := &recordingListener{name: "second", log: &log}

	bus.Register(first)
	bus.Register(second)

	bus.Publish(TagAdd)

	require.Len(t, log, 2)
	assert.Equal(t, "first:ADD", log[0])
	assert.Equal(t, "second:ADD", log[1])
}

func TestRegisterSameListenerTwice(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var log []string
	listener := &recordingListener{name: "only", log: &log}

	bus.Register(listener)
	bus.Register(listener)

	bus.Publish(TagPayment)

	assert.Len(t, log, 1)
}

func TestUnregister(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var log []string
	first := &recordingListener{name: "first", log: &log}
	second := &recordingListener{name: "second", log: &log}

	bus.Register(first)
	bus.Register(second)
	bus.Unregister(first)

	bus.Publish(TagDelete)

	require.Len(t, log, 1)
	assert.Equal(t, "second:DELETE", log[0])

	// Unregistering a listener that is not registered is a no-op
	bus.Unregister(first)
	bus.Publish(TagDelete)
	assert.Len(t, log, 2)
}

func TestPublishWithNoListeners(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	assert.NotPanics(t, func() { bus.Publish(TagAttendance) })
}
