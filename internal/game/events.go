package game

type EventType int

const (
	EventFired EventType = iota
	EventTankDestroyed
	EventGroundImpact
	EventOutOfBounds
	EventTurnChanged
	EventMatchOver
)

func (t EventType) String() string {
	switch t {
	case EventFired:
		return "fired"
	case EventTankDestroyed:
		return "tank-destroyed"
	case EventGroundImpact:
		return "ground-impact"
	case EventOutOfBounds:
		return "out-of-bounds"
	case EventTurnChanged:
		return "turn-changed"
	case EventMatchOver:
		return "match-over"
	}
	return "unknown"
}

// Event is a discrete notification for audio and UI.
// Tank is the shooter for EventFired, the victim for EventTankDestroyed,
// the new current player for EventTurnChanged, the winner (or -1) for
// EventMatchOver and the shooter for impact events.
type Event struct {
	Type EventType
	Tank int
	Pos  Vec2
}

// EventSink receives core notifications. Emit is called synchronously on
// the simulation path and must not call back into the Controller.
type EventSink interface {
	Emit(Event)
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
	all      []EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	eb.all = append(eb.all, fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
	for _, fn := range eb.all {
		fn(e)
	}
}

type nopSink struct{}

func (nopSink) Emit(Event) {}
