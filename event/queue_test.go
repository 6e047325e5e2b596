package event

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Emit(EventShotFired, &ShotFiredPayload{Letter: 'a'})
	q.Emit(EventTypingMiss, &MissPayload{Letter: 'z'})
	q.Emit(EventScoreChanged, &ScorePayload{Score: 30, Delta: 30})

	events := q.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	want := []EventType{EventShotFired, EventTypingMiss, EventScoreChanged}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], ev.Type)
		}
	}

	if q.Len() != 0 {
		t.Errorf("Expected empty queue after consume, got %d", q.Len())
	}
	if q.Consume() != nil {
		t.Error("Expected nil from empty queue")
	}
}

func TestQueueConsumeDetachesSlice(t *testing.T) {
	q := NewQueue()
	q.Emit(EventGameOver, nil)
	first := q.Consume()

	q.Emit(EventLevelComplete, nil)
	if first[0].Type != EventGameOver {
		t.Error("Consumed slice was overwritten by a later push")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventShotFired.String() != "shot_fired" {
		t.Errorf("Unexpected name %q", EventShotFired.String())
	}
	if EventType(999).String() != "unknown" {
		t.Error("Expected unknown for out-of-range type")
	}
}
