package events

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
)

func receiveEvent(t *testing.T, ch <-chan models.TaskEvent) models.TaskEvent {
	t.Helper()
	select {
	case evt, ok := <-ch:
		require.True(t, ok, "channel closed before expected event")
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return models.TaskEvent{}
	}
}

func requireClosed(t *testing.T, ch <-chan models.TaskEvent) {
	t.Helper()
	select {
	case _, ok := <-ch:
		require.False(t, ok, "expected channel to be closed")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestBusPublishStampsIdentity(t *testing.T) {
	bus := NewBus(BusConfig{})
	defer bus.Close()

	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventStarted})

	history := bus.History("task-1")
	require.Len(t, history, 1)
	assert.NotEmpty(t, history[0].ID)
	assert.False(t, history[0].Timestamp.IsZero())
}

func TestBusLiveDelivery(t *testing.T) {
	bus := NewBus(BusConfig{})
	defer bus.Close()

	ch, cancel := bus.Subscribe("task-1", "")
	defer cancel()

	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventStarted})
	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventIteration, Iteration: 1})

	assert.Equal(t, models.EventStarted, receiveEvent(t, ch).Type)

	second := receiveEvent(t, ch)
	assert.Equal(t, models.EventIteration, second.Type)
	assert.Equal(t, 1, second.Iteration)
}

func TestBusHistoryPreload(t *testing.T) {
	bus := NewBus(BusConfig{})
	defer bus.Close()

	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventStarted})
	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventIteration, Iteration: 1})

	ch, cancel := bus.Subscribe("task-1", "")
	defer cancel()

	// History arrives before anything published after the subscribe.
	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventIteration, Iteration: 2})

	assert.Equal(t, models.EventStarted, receiveEvent(t, ch).Type)
	assert.Equal(t, 1, receiveEvent(t, ch).Iteration)
	assert.Equal(t, 2, receiveEvent(t, ch).Iteration)
}

func TestBusReplaySinceEventID(t *testing.T) {
	bus := NewBus(BusConfig{})
	defer bus.Close()

	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventStarted})
	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventIteration, Iteration: 1})
	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventIteration, Iteration: 2})

	history := bus.History("task-1")
	require.Len(t, history, 3)

	ch, cancel := bus.Subscribe("task-1", history[1].ID)
	defer cancel()

	evt := receiveEvent(t, ch)
	assert.Equal(t, 2, evt.Iteration)

	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra event: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusTerminalEvent(t *testing.T) {
	t.Run("closes subscribers and drops later publishes", func(t *testing.T) {
		bus := NewBus(BusConfig{})
		defer bus.Close()

		ch, cancel := bus.Subscribe("task-1", "")
		defer cancel()

		bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventStarted})
		bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventComplete})
		bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventIteration, Iteration: 9})

		assert.Equal(t, models.EventStarted, receiveEvent(t, ch).Type)
		assert.Equal(t, models.EventComplete, receiveEvent(t, ch).Type)
		requireClosed(t, ch)

		history := bus.History("task-1")
		require.Len(t, history, 2)
		assert.Equal(t, models.EventComplete, history[len(history)-1].Type)
	})

	t.Run("second terminal event is dropped", func(t *testing.T) {
		bus := NewBus(BusConfig{})
		defer bus.Close()

		bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventComplete})
		bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventError})

		history := bus.History("task-1")
		require.Len(t, history, 1)
		assert.Equal(t, models.EventComplete, history[0].Type)
	})

	t.Run("late subscriber replays history then closes", func(t *testing.T) {
		bus := NewBus(BusConfig{})
		defer bus.Close()

		bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventStarted})
		bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventComplete})

		ch, cancel := bus.Subscribe("task-1", "")
		defer cancel()

		assert.Equal(t, models.EventStarted, receiveEvent(t, ch).Type)
		assert.Equal(t, models.EventComplete, receiveEvent(t, ch).Type)
		requireClosed(t, ch)
	})
}

func TestBusTerminalTTL(t *testing.T) {
	bus := NewBus(BusConfig{TerminalTTL: 20 * time.Millisecond})
	defer bus.Close()

	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventComplete})
	require.Len(t, bus.History("task-1"), 1)

	assert.Eventually(t, func() bool {
		return bus.History("task-1") == nil
	}, time.Second, 10*time.Millisecond)
}

func TestBusHistoryCap(t *testing.T) {
	bus := NewBus(BusConfig{})
	defer bus.Close()

	for i := 0; i < historyLimit+10; i++ {
		bus.Publish(models.TaskEvent{
			TaskID:    "task-1",
			Type:      models.EventIteration,
			Iteration: i,
		})
	}

	history := bus.History("task-1")
	require.Len(t, history, historyLimit)
	// The oldest events fell off the front.
	assert.Equal(t, 10, history[0].Iteration)
	assert.Equal(t, historyLimit+9, history[len(history)-1].Iteration)
}

func TestBusHistoryCapKeepsTerminal(t *testing.T) {
	bus := NewBus(BusConfig{})
	defer bus.Close()

	for i := 0; i < historyLimit; i++ {
		bus.Publish(models.TaskEvent{
			TaskID:    "task-1",
			Type:      models.EventIteration,
			Iteration: i,
		})
	}
	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventComplete})

	history := bus.History("task-1")
	require.Len(t, history, historyLimit)
	// An eviction made room; the terminal event holds the tail.
	assert.Equal(t, 1, history[0].Iteration)
	assert.Equal(t, models.EventComplete, history[len(history)-1].Type)
}

func TestBusCancelDetaches(t *testing.T) {
	bus := NewBus(BusConfig{})
	defer bus.Close()

	ch, cancel := bus.Subscribe("task-1", "")
	require.Equal(t, 1, bus.SubscriberCount("task-1"))

	cancel()
	assert.Equal(t, 0, bus.SubscriberCount("task-1"))
	requireClosed(t, ch)

	// Cancelling twice must not panic.
	cancel()
}

func TestBusKeepaliveNotStored(t *testing.T) {
	bus := NewBus(BusConfig{})
	defer bus.Close()

	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventStarted})
	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventKeepalive})

	history := bus.History("task-1")
	require.Len(t, history, 1)
	assert.Equal(t, models.EventStarted, history[0].Type)
}

func TestBusIndependentTopics(t *testing.T) {
	bus := NewBus(BusConfig{})
	defer bus.Close()

	chA, cancelA := bus.Subscribe("task-a", "")
	defer cancelA()
	chB, cancelB := bus.Subscribe("task-b", "")
	defer cancelB()

	bus.Publish(models.TaskEvent{TaskID: "task-a", Type: models.EventStarted})

	assert.Equal(t, "task-a", receiveEvent(t, chA).TaskID)
	select {
	case evt := <-chB:
		t.Fatalf("task-b subscriber received foreign event: %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusClose(t *testing.T) {
	bus := NewBus(BusConfig{})

	ch, cancel := bus.Subscribe("task-1", "")
	defer cancel()

	bus.Close()
	requireClosed(t, ch)

	// Publishing after close must not panic and must not resurrect state.
	bus.Publish(models.TaskEvent{TaskID: "task-1", Type: models.EventStarted})
	assert.Nil(t, bus.History("task-1"))
}

func TestBusConcurrentPublishSubscribe(_ *testing.T) {
	bus := NewBus(BusConfig{})
	defer bus.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			bus.Publish(models.TaskEvent{
				TaskID:    fmt.Sprintf("task-%d", i%4),
				Type:      models.EventIteration,
				Iteration: i,
			})
		}
	}()

	for i := 0; i < 50; i++ {
		_, cancel := bus.Subscribe(fmt.Sprintf("task-%d", i%4), "")
		cancel()
	}
	<-done
	// If no panic or race, concurrent access is good
}
