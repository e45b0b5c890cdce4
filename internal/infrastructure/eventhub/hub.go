package eventhub

import (
	"sync"
	"time"

	"walletstate/internal/app/port"
	"walletstate/internal/domain/entity"
)

// Subscriber is a channel that receives events.
type Subscriber chan entity.Event

// Settings sizes subscriber buffers and the history ring.
type Settings struct {
	SubscriberBuffer int
	HistorySize      int
}

// Hub fans observer notifications out to in-process subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	history     []entity.Event
	next        int
	full        bool

	buffer   int
	recorder port.EventRecorder
	logger   port.Logger
	now      func() time.Time
}

// New creates a Hub. Non-positive sizes fall back to 100 events.
func New(settings Settings, recorder port.EventRecorder, logger port.Logger) *Hub {
	if settings.SubscriberBuffer <= 0 {
		settings.SubscriberBuffer = 100
	}
	if settings.HistorySize <= 0 {
		settings.HistorySize = 100
	}
	return &Hub{
		history:  make([]entity.Event, settings.HistorySize),
		buffer:   settings.SubscriberBuffer,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Subscribe adds a new subscriber and returns a channel to receive events.
func (h *Hub) Subscribe() Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch := make(Subscriber, h.buffer)
	h.subscribers = append(h.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(ch Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, sub := range h.subscribers {
		if sub == ch {
			h.subscribers = append(h.subscribers[:i], h.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// ChainsChanged implements port.ChainsChangedHandler.
func (h *Hub) ChainsChanged(account string, chains entity.ActiveChains) {
	h.publish(entity.Event{Kind: entity.EventChainsChanged, Account: account, Chains: chains})
}

// ChainChanged implements port.ChainChangedHandler.
func (h *Hub) ChainChanged(chainID uint64, originID string) {
	h.publish(entity.Event{Kind: entity.EventChainChanged, OriginID: originID, ChainID: chainID})
}

// NetworkChanged implements port.NetworkChangedHandler.
func (h *Hub) NetworkChanged(networkID uint64, originID string) {
	h.publish(entity.Event{Kind: entity.EventNetworkChanged, OriginID: originID, ChainID: networkID})
}

func (h *Hub) publish(event entity.Event) {
	event.At = h.now()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.history[h.next] = event
	h.next = (h.next + 1) % len(h.history)
	if h.next == 0 {
		h.full = true
	}

	for _, sub := range h.subscribers {
		select {
		case sub <- event:
		default:
			h.recorder.ObserveDropped()
			h.logger.Warn("Subscriber is full, event dropped", "kind", event.Kind)
		}
	}

	h.recorder.ObserveEvent(string(event.Kind))
	h.logger.Debug("Event emitted", "kind", event.Kind, "origin", event.OriginID, "chain_id", event.ChainID, "subscribers", len(h.subscribers))
}

// Recent returns up to limit of the latest events, oldest first. A non-positive limit returns all retained events.
func (h *Hub) Recent(limit int) []entity.Event {
	h.mu.RLock()
	defer h.mu.RUnlock()

	size := h.next
	start := 0
	if h.full {
		size = len(h.history)
		start = h.next
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]entity.Event, 0, limit)
	for i := size - limit; i < size; i++ {
		out = append(out, h.history[(start+i)%len(h.history)])
	}
	return out
}

var (
	_ port.ChainsChangedHandler = (*Hub)(nil)
	_ port.OriginChainHandler   = (*Hub)(nil)
)
