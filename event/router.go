package event

// Handler receives routed events with a context T
type Handler[T any] interface {
	HandleEvent(ctx T, ev GameEvent)
	EventTypes() []EventType
}

// Router dispatches queued events to handlers in registration order
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *Queue
}

func NewRouter[T any](queue *Queue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register subscribes handler to its declared event types
func (r *Router[T]) Register(h Handler[T]) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll drains the queue and returns the number of events consumed
// Events without a handler are dropped
func (r *Router[T]) DispatchAll(ctx T) int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	return len(events)
}

// DispatchAt is DispatchAll with every event stamped with frame before delivery
func (r *Router[T]) DispatchAt(ctx T, frame int64) int {
	events := r.queue.Consume()
	for _, ev := range events {
		ev.Frame = frame
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	return len(events)
}

func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
