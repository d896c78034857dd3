package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// Event types pushed by systems.
const (
	EventHit      = "hit"
	EventDefeated = "defeated"
)

// HitEvent is emitted when a hitbox lands on a hurtbox.
type HitEvent struct {
	Attacker Entity
	Target   Entity
	Damage   int
}

// DefeatedEvent is emitted when an entity's health reaches zero.
type DefeatedEvent struct {
	Entity Entity
}

// EventQueue is a simple FIFO queue drained once per frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
