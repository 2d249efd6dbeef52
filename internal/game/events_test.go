package game

import "testing"

func TestEventBusFanOut(t *testing.T) {
	bus := NewEventBus()
	var fired, destroyed, all int
	bus.Subscribe(EventFired, func(Event) { fired++ })
	bus.Subscribe(EventFired, func(Event) { fired++ })
	bus.Subscribe(EventTankDestroyed, func(e Event) {
		if e.Tank != 3 {
			t.Errorf("destroyed tank = %d, want 3", e.Tank)
		}
		destroyed++
	})
	bus.SubscribeAll(func(Event) { all++ })

	bus.Emit(Event{Type: EventFired})
	bus.Emit(Event{Type: EventTankDestroyed, Tank: 3})
	bus.Emit(Event{Type: EventTurnChanged})

	if fired != 2 || destroyed != 1 || all != 3 {
		t.Fatalf("fired=%d destroyed=%d all=%d", fired, destroyed, all)
	}
}

func TestControllerEmitsThroughBus(t *testing.T) {
	bus := NewEventBus()
	var got []EventType
	bus.SubscribeAll(func(e Event) { got = append(got, e.Type) })

	m, err := NewMatch(DefaultConfig(), duel(100, 900, 45), bus, nil)
	if err != nil {
		t.Fatal(err)
	}
	m.Handle(InputFireDown)
	for i := 0; i < 10; i++ {
		m.Handle(InputFireHeld)
	}
	m.Handle(InputFireUp) // power 30 lands short of both tanks
	for i := 0; i < 1000 && m.Snapshot().Flying; i++ {
		m.Frame()
	}
	if len(got) != 3 || got[0] != EventFired || got[2] != EventTurnChanged {
		t.Fatalf("events = %v", got)
	}
}
