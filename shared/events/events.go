package events

import (
	"sync"
	"time"

	"quedee/shared/timezone"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingStatus    = "booking.status_changed"
	TypeBookingPayment   = "booking.payment_changed"
	TypeResourceToggled  = "resource.availability_toggled"
	TypeQueueReset       = "queue.reset"
)

// Event is a lightweight domain event emitted by the queue service.
type Event struct {
	Type      string
	BookingID string
	Ticket    string
	Detail    string
	CreatedAt time.Time
}

// Handler reacts to an event. Handlers run synchronously on the publishing
// goroutine; a handler must not call back into the service.
type Handler func(event Event)

// Bus provides in-process pub/sub. Subscription is explicit; there are no
// implicit render or persistence side effects hanging off it.
type Bus struct {
	subscribers map[string][]Handler
	mu          sync.RWMutex
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[string][]Handler)}
}

// Subscribe registers a handler for a given event type.
func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// SubscribeAll registers a handler for every known event type.
func (b *Bus) SubscribeAll(handler Handler) {
	for _, eventType := range []string{
		TypeBookingCreated,
		TypeBookingStatus,
		TypeBookingPayment,
		TypeResourceToggled,
		TypeQueueReset,
	} {
		b.Subscribe(eventType, handler)
	}
}

// Publish notifies subscribers of the event type.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = timezone.Now()
	}

	for _, handler := range handlers {
		handler(event)
	}
}
