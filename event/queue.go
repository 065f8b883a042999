package event

import "sync/atomic"

const (
	// QueueSize must be a power of two
	QueueSize = 256
	queueMask = QueueSize - 1
)

// Queue is a lock-free multi-producer single-consumer ring buffer
// Producers may run on input goroutines; the simulation loop consumes
// When full the oldest unread events are overwritten
type Queue struct {
	events    [QueueSize]GameEvent
	published [QueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event; safe for concurrent producers
func (q *Queue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & queueMask
		q.events[idx] = ev
		q.published[idx].Store(true) // after the write

		if head := q.head.Load(); next-head > QueueSize {
			q.head.CompareAndSwap(head, next-QueueSize)
		}
		return
	}
}

// Consume drains pending events in FIFO order; single consumer only
func (q *Queue) Consume() []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		avail := tail - head
		if avail > QueueSize {
			avail = QueueSize
			head = tail - QueueSize
		}

		out := make([]GameEvent, 0, avail)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & queueMask
			if !q.published[idx].Load() {
				break
			}
			out = append(out, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns the approximate pending count
func (q *Queue) Len() int {
	head, tail := q.head.Load(), q.tail.Load()
	if tail <= head {
		return 0
	}
	if d := int(tail - head); d < QueueSize {
		return d
	}
	return QueueSize
}
