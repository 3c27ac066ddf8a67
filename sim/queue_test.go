package sim

import (
	"errors"
	"testing"
)

func TestProcessQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with processes [0, 1]
	pq := NewProcessQueue("ready", 4)
	_ = pq.Enqueue(0)
	_ = pq.Enqueue(1)

	// WHEN Peek() is called
	got, ok := pq.Peek()

	// THEN it returns the front element without removing it
	if !ok || got != 0 {
		t.Errorf("Peek: got (%d, %v), want (0, true)", got, ok)
	}
	if pq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", pq.Len())
	}
}

func TestProcessQueue_Peek_Empty_ReportsAbsent(t *testing.T) {
	pq := NewProcessQueue("ready", 1)
	if _, ok := pq.Peek(); ok {
		t.Error("Peek on empty queue reported a process")
	}
}

func TestProcessQueue_Dequeue_PreservesFIFOOrder(t *testing.T) {
	// GIVEN a queue filled with 2, 0, 1
	pq := NewProcessQueue("io", 3)
	for _, id := range []ProcessID{2, 0, 1} {
		if err := pq.Enqueue(id); err != nil {
			t.Fatalf("Enqueue(%d): %v", id, err)
		}
	}

	// WHEN every entry is dequeued
	var got []ProcessID
	for pq.Len() > 0 {
		id, err := pq.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		got = append(got, id)
	}

	// THEN insertion order is preserved
	want := []ProcessID{2, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestProcessQueue_Enqueue_AtCapacity_ReturnsOverflow(t *testing.T) {
	// GIVEN a full queue of capacity 1
	pq := NewProcessQueue("aux", 1)
	if err := pq.Enqueue(0); err != nil {
		t.Fatalf("first Enqueue: %v", err)
	}

	// WHEN another process is enqueued
	err := pq.Enqueue(1)

	// THEN ErrQueueOverflow is returned and the queue is unchanged
	if !errors.Is(err, ErrQueueOverflow) {
		t.Errorf("expected ErrQueueOverflow, got %v", err)
	}
	if pq.Len() != 1 {
		t.Errorf("Len after overflow: got %d, want 1", pq.Len())
	}
}

func TestProcessQueue_Dequeue_Empty_ReturnsUnderflow(t *testing.T) {
	pq := NewProcessQueue("ready", 2)
	if _, err := pq.Dequeue(); !errors.Is(err, ErrQueueUnderflow) {
		t.Errorf("expected ErrQueueUnderflow, got %v", err)
	}
}

func TestProcessQueue_RemoveAt_KeepsRelativeOrder(t *testing.T) {
	// GIVEN [0, 1, 2, 3]
	pq := NewProcessQueue("ready", 4)
	for id := ProcessID(0); id < 4; id++ {
		_ = pq.Enqueue(id)
	}

	// WHEN the entry at index 2 is removed
	id, err := pq.RemoveAt(2)

	// THEN it is returned and the rest keep their order
	if err != nil || id != 2 {
		t.Fatalf("RemoveAt(2): got (%d, %v), want (2, nil)", id, err)
	}
	if got := pq.String(); got != "[0 1 3]" {
		t.Errorf("String after RemoveAt: got %q, want %q", got, "[0 1 3]")
	}
}

func TestNewProcessQueue_NonPositiveCapacity_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero capacity")
		}
	}()
	NewProcessQueue("ready", 0)
}
