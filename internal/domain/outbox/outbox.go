package outbox

import "context"

// Event is a marketplace fact worth announcing, such as a completed or failed
// purchase. EventName is the routing key subscribers register under.
type Event interface {
	EventName() string
}

// Handler reacts to one purchase outcome; the console printer is the main one.
type Handler func(ctx context.Context, e Event) error

// Publisher is what the purchase use case reports outcomes through.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

type Subscriber interface {
	Subscribe(eventName string, h Handler)
}
