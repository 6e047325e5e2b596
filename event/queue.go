package event

// Queue is a FIFO of game events owned by the simulation thread
// Push and Consume are called from the single game loop, no synchronization is needed
type Queue struct {
	events []GameEvent
}

func NewQueue() *Queue {
	return &Queue{events: make([]GameEvent, 0, 32)}
}

// Push appends an event
func (q *Queue) Push(ev GameEvent) {
	q.events = append(q.events, ev)
}

// Emit appends an event built from type and payload
func (q *Queue) Emit(t EventType, payload any) {
	q.events = append(q.events, GameEvent{Type: t, Payload: payload})
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}

// Clear discards pending events
func (q *Queue) Clear() {
	q.events = q.events[:0]
}
