package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(GameEvent{Type: EventStore})
	q.Push(GameEvent{Type: EventSynthesize})
	assert.Equal(t, 2, q.Len())

	got := q.Consume()
	require.Len(t, got, 2)
	assert.Equal(t, EventStore, got[0].Type)
	assert.Equal(t, EventSynthesize, got[1].Type)
	assert.Nil(t, q.Consume())
}

func TestQueueOverwritesOldest(t *testing.T) {
	q := NewQueue()
	for i := 0; i < QueueSize+10; i++ {
		q.Push(GameEvent{Type: EventSelectSlot, Payload: &SlotPayload{Slot: i}})
	}
	got := q.Consume()
	require.Len(t, got, QueueSize)
	assert.Equal(t, 10, got[0].Payload.(*SlotPayload).Slot)
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 32; i++ {
				q.Push(GameEvent{Type: EventStore})
			}
		}()
	}
	wg.Wait()
	assert.Len(t, q.Consume(), 128)
}

type recorder struct {
	types  []EventType
	seen   []EventType
	frames []int64
}

func (r *recorder) EventTypes() []EventType { return r.types }

func (r *recorder) HandleEvent(_ struct{}, ev GameEvent) {
	r.seen = append(r.seen, ev.Type)
	r.frames = append(r.frames, ev.Frame)
}

func TestRouterDispatch(t *testing.T) {
	q := NewQueue()
	r := NewRouter[struct{}](q)
	a := &recorder{types: []EventType{EventStore, EventSynthesize}}
	b := &recorder{types: []EventType{EventSynthesize}}
	r.Register(a)
	r.Register(b)

	q.Push(GameEvent{Type: EventSynthesize})
	q.Push(GameEvent{Type: EventClearBlueprint})
	q.Push(GameEvent{Type: EventStore})

	assert.Equal(t, 3, r.DispatchAll(struct{}{}))
	assert.Equal(t, []EventType{EventSynthesize, EventStore}, a.seen)
	assert.Equal(t, []EventType{EventSynthesize}, b.seen)
	assert.Equal(t, 2, r.HandlerCount(EventSynthesize))
}

func TestRouterDispatchAtStampsFrame(t *testing.T) {
	q := NewQueue()
	r := NewRouter[struct{}](q)
	a := &recorder{types: []EventType{EventStore}}
	r.Register(a)

	q.Push(GameEvent{Type: EventStore})
	q.Push(GameEvent{Type: EventStore, Frame: 99})

	assert.Equal(t, 2, r.DispatchAt(struct{}{}, 12))
	assert.Equal(t, []int64{12, 12}, a.frames)
}
