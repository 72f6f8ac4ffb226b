// Package events provides the in-memory per-task event bus feeding the
// progress stream.
package events

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/loop-symphony/symphony/pkg/models"
)

const (
	// historyLimit caps per-task history; the oldest non-terminal event
	// is dropped once reached.
	historyLimit = 1024
	// subscriberBuffer is the live-event headroom on top of the history
	// preload for each subscriber channel.
	subscriberBuffer = 64
	// terminalTTL is how long a finished task's history stays available
	// for late subscribers.
	terminalTTL = 15 * time.Minute
)

// BusConfig tunes the bus. Zero fields fall back to the package
// defaults above.
type BusConfig struct {
	HistoryLimit     int
	SubscriberBuffer int
	TerminalTTL      time.Duration
}

// topic holds one task's event stream. terminal flips when a terminal
// event lands; after that further publishes are dropped and the topic is
// removed after terminalTTL.
type topic struct {
	mu          sync.Mutex
	history     []models.TaskEvent
	subscribers map[string]chan models.TaskEvent
	terminal    bool
	cleanup     *time.Timer
}

// Bus fans task events out to subscribers and retains bounded history so
// late subscribers can catch up. Each task ID is an independent topic.
type Bus struct {
	mu     sync.RWMutex
	topics map[string]*topic
	closed bool

	historyLimit     int
	subscriberBuffer int
	ttl              time.Duration
}

// NewBus creates an event bus.
func NewBus(cfg BusConfig) *Bus {
	b := &Bus{
		topics:           make(map[string]*topic),
		historyLimit:     cfg.HistoryLimit,
		subscriberBuffer: cfg.SubscriberBuffer,
		ttl:              cfg.TerminalTTL,
	}
	if b.historyLimit <= 0 {
		b.historyLimit = historyLimit
	}
	if b.subscriberBuffer <= 0 {
		b.subscriberBuffer = subscriberBuffer
	}
	if b.ttl <= 0 {
		b.ttl = terminalTTL
	}
	return b
}

// Publish appends the event to its task's history and delivers it to
// subscribers. ID and Timestamp are stamped when empty. Events published
// after a terminal event are dropped; keepalives are never routed
// through the bus.
func (b *Bus) Publish(event models.TaskEvent) {
	if event.TaskID == "" || event.Type == models.EventKeepalive {
		return
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	t := b.getOrCreateTopic(event.TaskID)
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.terminal {
		slog.Debug("Dropping event after terminal", "task_id", event.TaskID, "type", event.Type)
		return
	}

	if len(t.history) >= b.historyLimit {
		drop := 0
		if t.history[drop].Type.IsTerminal() && len(t.history) > 1 {
			drop = 1
		}
		t.history = append(t.history[:drop], t.history[drop+1:]...)
	}
	t.history = append(t.history, event)

	for id, ch := range t.subscribers {
		select {
		case ch <- event:
		default:
			slog.Warn("Dropping event for slow subscriber",
				"task_id", event.TaskID, "subscriber_id", id, "type", event.Type)
		}
	}

	if event.Type.IsTerminal() {
		t.terminal = true
		for _, ch := range t.subscribers {
			close(ch)
		}
		t.subscribers = make(map[string]chan models.TaskEvent)
		taskID := event.TaskID
		t.cleanup = time.AfterFunc(b.ttl, func() { b.removeTopic(taskID) })
	}
}

// Subscribe attaches to a task's stream. History after sinceEventID
// (all of it when empty) is preloaded into the returned channel before
// any live event, so ordering is preserved. The channel is closed after
// the terminal event. The returned cancel func detaches the subscriber;
// it is safe to call more than once.
func (b *Bus) Subscribe(taskID, sinceEventID string) (<-chan models.TaskEvent, func()) {
	t := b.getOrCreateTopic(taskID)
	if t == nil {
		ch := make(chan models.TaskEvent)
		close(ch)
		return ch, func() {}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	replay := t.history
	if sinceEventID != "" {
		for i, evt := range t.history {
			if evt.ID == sinceEventID {
				replay = t.history[i+1:]
				break
			}
		}
	}

	ch := make(chan models.TaskEvent, len(replay)+b.subscriberBuffer)
	for _, evt := range replay {
		ch <- evt
	}

	if t.terminal {
		close(ch)
		return ch, func() {}
	}

	subID := uuid.New().String()
	t.subscribers[subID] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if existing, ok := t.subscribers[subID]; ok {
				delete(t.subscribers, subID)
				close(existing)
			}
		})
	}
	return ch, cancel
}

// History returns a copy of the task's retained events.
func (b *Bus) History(taskID string) []models.TaskEvent {
	b.mu.RLock()
	t, ok := b.topics[taskID]
	b.mu.RUnlock()
	if !ok {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]models.TaskEvent, len(t.history))
	copy(out, t.history)
	return out
}

// SubscriberCount returns the live subscriber count for a task.
func (b *Bus) SubscriberCount(taskID string) int {
	b.mu.RLock()
	t, ok := b.topics[taskID]
	b.mu.RUnlock()
	if !ok {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subscribers)
}

// Stats counts live topics and subscribers across the bus, for the
// system health snapshot.
type Stats struct {
	Topics      int `json:"topics"`
	Subscribers int `json:"subscribers"`
}

// Stats snapshots the bus.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	topics := make([]*topic, 0, len(b.topics))
	for _, t := range b.topics {
		topics = append(topics, t)
	}
	b.mu.RUnlock()

	stats := Stats{Topics: len(topics)}
	for _, t := range topics {
		t.mu.Lock()
		stats.Subscribers += len(t.subscribers)
		t.mu.Unlock()
	}
	return stats
}

// Close shuts the bus down, closing every subscriber channel and
// dropping all topics. Publishes after Close are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	topics := b.topics
	b.topics = make(map[string]*topic)
	b.closed = true
	b.mu.Unlock()

	for _, t := range topics {
		t.mu.Lock()
		if t.cleanup != nil {
			t.cleanup.Stop()
		}
		for _, ch := range t.subscribers {
			close(ch)
		}
		t.subscribers = make(map[string]chan models.TaskEvent)
		t.terminal = true
		t.mu.Unlock()
	}
}

func (b *Bus) getOrCreateTopic(taskID string) *topic {
	b.mu.RLock()
	t, ok := b.topics[taskID]
	closed := b.closed
	b.mu.RUnlock()
	if ok || closed {
		return t
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	if t, ok := b.topics[taskID]; ok {
		return t
	}
	t = &topic{subscribers: make(map[string]chan models.TaskEvent)}
	b.topics[taskID] = t
	return t
}

func (b *Bus) removeTopic(taskID string) {
	b.mu.Lock()
	t, ok := b.topics[taskID]
	if ok {
		delete(b.topics, taskID)
	}
	b.mu.Unlock()
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, ch := range t.subscribers {
		close(ch)
	}
	t.subscribers = make(map[string]chan models.TaskEvent)
}
