package overlay

import (
	"sowon/internal/core/input"
	"sowon/internal/logger"
)

const queueCapacity = 64

// Queue buffers input events between UI callbacks and the frame loop.
type Queue struct {
	events chan input.Event
	log    *logger.Logger
}

// NewQueue creates an event queue.
func NewQueue(log *logger.Logger) *Queue {
	if log == nil {
		log = logger.Discard()
	}
	return &Queue{
		events: make(chan input.Event, queueCapacity),
		log:    log,
	}
}

// Push enqueues an event without blocking. Events are dropped when the frame
// loop has fallen behind by a full queue.
func (queue *Queue) Push(event input.Event) {
	select {
	case queue.events <- event:
	default:
		queue.log.Debug("input queue full, dropping %s event", event.Type)
	}
}

// Drain returns every pending event in arrival order.
func (queue *Queue) Drain() []input.Event {
	var events []input.Event
	for {
		select {
		case event := <-queue.events:
			events = append(events, event)
		default:
			return events
		}
	}
}
