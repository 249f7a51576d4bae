package events

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus()

	received := false
	var receivedEvent Event

	bus.SubscribeFunc(TypePlanStarted, func(e Event) {
		received = true
		receivedEvent = e
	})

	bus.Publish(NewPlanStartedEvent("test-game", []int{0, 1}, 1))

	assert.True(t, received, "Event handler should have been called")
	require.NotNil(t, receivedEvent)
	assert.Equal(t, TypePlanStarted, receivedEvent.Type())
	assert.Equal(t, "test-game", receivedEvent.GameID())
	assert.WithinDuration(t, time.Now(), receivedEvent.Timestamp(), time.Second)
}

func TestEventBusMultipleHandlers(t *testing.T) {
	bus := NewEventBus()

	handler1Called := false
	handler2Called := false

	id1 := bus.SubscribeFunc(TypeMoveApplied, func(e Event) {
		handler1Called = true
	})
	id2 := bus.SubscribeFunc(TypeMoveApplied, func(e Event) {
		handler2Called = true
	})

	bus.Publish(NewMoveAppliedEvent("test-game", 1, 1, []int{1, 0}))

	assert.True(t, handler1Called)
	assert.True(t, handler2Called)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, "move.applied_func_2", id2)
	assert.Equal(t, 2, bus.GetFuncHandlerCount(TypeMoveApplied))
	assert.Equal(t, 0, bus.GetFuncHandlerCount(TypeMoveRejected))
}

// TestSubscriber is a test implementation of Subscriber
type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBusSubscriber(t *testing.T) {
	bus := NewEventBus()

	subscriber := &TestSubscriber{
		id: "test-subscriber",
		interestedTypes: map[string]bool{
			TypePlanStarted:   true,
			TypePlanCompleted: true,
		},
	}

	bus.Subscribe(subscriber)
	assert.Equal(t, 1, bus.GetSubscriberCount())

	bus.Publish(NewPlanStartedEvent("test-game", []int{0, 1}, 1))
	bus.Publish(NewMoveAppliedEvent("test-game", 1, 1, []int{1, 0}))
	bus.Publish(NewPlanCompletedEvent("test-game", []int{1}, []int{1, 0}, OutcomeStuck, time.Millisecond))

	require.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, TypePlanStarted, subscriber.receivedEvents[0].Type())
	assert.Equal(t, TypePlanCompleted, subscriber.receivedEvents[1].Type())

	bus.Unsubscribe(subscriber.ID())
	assert.Equal(t, 0, bus.GetSubscriberCount())
	bus.Publish(NewPlanStartedEvent("test-game", []int{0, 1}, 1))

	assert.Len(t, subscriber.receivedEvents, 2)
}

type panickySubscriber struct{}

func (panickySubscriber) ID() string { return "panicky" }
func (panickySubscriber) HandleEvent(Event) { panic("boom") }
func (panickySubscriber) InterestedIn(string) bool { return true }

func TestEventBusRecoversFromPanics(t *testing.T) {
	var buf bytes.Buffer
	bus := NewEventBusWithLogger(zerolog.New(&buf))

	bus.Subscribe(panickySubscriber{})
	bus.SubscribeFunc(TypeMoveRejected, func(Event) { panic("handler boom") })

	other := &TestSubscriber{id: "other"}
	bus.Subscribe(other)

	assert.NotPanics(t, func() {
		bus.Publish(NewMoveRejectedEvent("test-game", 3, 1, "illegal move"))
	})
	assert.Len(t, other.receivedEvents, 1)
	assert.Contains(t, buf.String(), "Subscriber panicked while handling event")
	assert.Contains(t, buf.String(), "Function handler panicked while handling event")
}

func TestEventConstructors(t *testing.T) {
	started := NewPlanStartedEvent("g", []int{0, 0, 1}, 1)
	assert.Equal(t, []int{0, 0, 1}, started.Board)
	assert.Equal(t, 1, started.TotalSeeds)

	completed := NewPlanCompletedEvent("g", []int{5, 1}, []int{2, 0}, OutcomeWon, time.Second)
	assert.Equal(t, TypePlanCompleted, completed.Type())
	assert.Equal(t, []int{5, 1}, completed.Moves)
	assert.Equal(t, OutcomeWon, completed.Outcome)
	assert.Equal(t, time.Second, completed.Duration)

	applied := NewMoveAppliedEvent("g", 2, 3, []int{1, 1, 0})
	assert.Equal(t, 2, applied.House)
	assert.Equal(t, 3, applied.Step)

	rejected := NewMoveRejectedEvent("g", 4, 3, "illegal move")
	assert.Equal(t, TypeMoveRejected, rejected.Type())
	assert.Equal(t, 4, rejected.House)
	assert.Equal(t, 3, rejected.Seeds)
	assert.Equal(t, "illegal move", rejected.Reason)
}
