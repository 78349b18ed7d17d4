package bus

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyEventType = errors.New("event type is required")

type simpleEvent struct {
	typeStr string
	source  string
	ts      time.Time
	data    any
}

func (e simpleEvent) Type() string         { return e.typeStr }
func (e simpleEvent) Source() string       { return e.source }
func (e simpleEvent) Timestamp() time.Time { return e.ts }
func (e simpleEvent) Data() any            { return e.data }

// NewEvent creates an Event stamped with ts. Simulation code passes its own
// simulated time so that replays produce identical events.
func NewEvent(typ, src string, ts time.Time, data any) Event {
	return simpleEvent{typeStr: typ, source: src, ts: ts, data: data}
}

type subscription struct {
	id        string
	eventType string
	seq       uint64
	handler   EventHandler
	bus       *inMemoryBus

	mu     sync.Mutex
	active bool
}

func (s *subscription) ID() string        { return s.id }
func (s *subscription) EventType() string { return s.eventType }

func (s *subscription) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *subscription) Cancel() error {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return nil
	}
	s.active = false
	s.mu.Unlock()
	s.bus.remove(s)
	return nil
}

type inMemoryBus struct {
	mu sync.RWMutex
	// eventType -> subscription id -> subscription
	handlers map[string]map[string]*subscription
	seq      uint64
}

// New creates an empty EventBus.
func New() EventBus {
	return &inMemoryBus{handlers: make(map[string]map[string]*subscription)}
}

func (b *inMemoryBus) Subscribe(eventType string, handler EventHandler) (Subscription, error) {
	if eventType == "" {
		return nil, ErrEmptyEventType
	}
	if handler == nil {
		return nil, fmt.Errorf("subscribe %q: nil handler", eventType)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[string]*subscription)
	}
	b.seq++
	s := &subscription{
		id:        uuid.NewString(),
		eventType: eventType,
		seq:       b.seq,
		handler:   handler,
		bus:       b,
		active:    true,
	}
	b.handlers[eventType][s.id] = s
	return s, nil
}

func (b *inMemoryBus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return nil
	}
	return sub.Cancel()
}

func (b *inMemoryBus) Subscribers(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

// Publish delivers to handlers in subscription order.
func (b *inMemoryBus) Publish(event Event) error {
	if event == nil || event.Type() == "" {
		return ErrEmptyEventType
	}
	b.mu.RLock()
	subs := make([]*subscription, 0, len(b.handlers[event.Type()]))
	for _, s := range b.handlers[event.Type()] {
		subs = append(subs, s)
	}
	b.mu.RUnlock()
	sort.Slice(subs, func(i, j int) bool { return subs[i].seq < subs[j].seq })

	var errs []error
	for _, s := range subs {
		if err := s.handler(event); err != nil {
			errs = append(errs, fmt.Errorf("%s handler %s: %w", event.Type(), s.id, err))
		}
	}
	return errors.Join(errs...)
}

func (b *inMemoryBus) remove(s *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if mm, ok := b.handlers[s.eventType]; ok {
		delete(mm, s.id)
		if len(mm) == 0 {
			delete(b.handlers, s.eventType)
		}
	}
}
