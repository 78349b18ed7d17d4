package bus

import "time"

// EventBus is a thread-safe, in-process pub/sub bus.
//
// Delivery is synchronous: Publish calls every handler subscribed to
// Event.Type in the caller's goroutine and joins their errors.
type EventBus interface {
	Publish(event Event) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. Nil is ignored.
	Unsubscribe(Subscription) error
	// Subscribers counts active handlers for an event type.
	Subscribers(eventType string) int
}

// Event is an immutable message transported by the bus.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

type EventHandler func(event Event) error

// Subscription is a registered handler. Cancel may be called more than once.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	Cancel() error
}
