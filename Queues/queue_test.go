package Queues

import (
	"errors"
	"testing"
)

func TestArrayQueue_FIFO(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if _, ok := q.Peek(); ok {
		t.Error("peek on empty queue")
	}
	var e *EmptyQueueError
	if _, err := q.Pop(); !errors.As(err, &e) {
		t.Errorf("pop on empty queue returned %v", err)
	}
	next := 0
	for i := 0; i < 100; i++ {
		q.Push(i)
		if i%3 == 0 { //interleave pops so that the content wraps around.
			if v, err := q.Pop(); err != nil || v != next {
				t.Errorf("pop got %d, %v; want %d", v, err, next)
			}
			next++
		}
	}
	if q.Size() != uint(100-next) {
		t.Errorf("size is %d, want %d", q.Size(), 100-next)
	}
	q.Shrink()
	for !q.Empty() {
		if v, _ := q.Peek(); v != next {
			t.Errorf("peek got %d, want %d", v, next)
		}
		if v, _ := q.Pop(); v != next {
			t.Errorf("pop got %d, want %d", v, next)
		}
		next++
	}
	if next != 100 {
		t.Errorf("popped %d items, want 100", next)
	}
}

func TestArrayQueue_Clear(t *testing.T) {
	q := MakeArrayQueue[string](2)
	q.Push("a")
	q.Push("b")
	q.Push("c")
	q.Clear()
	if !q.Empty() || q.Size() != 0 {
		t.Error("queue not empty after clear")
	}
	q.Push("d")
	if v, _ := q.Pop(); v != "d" {
		t.Errorf("pop got %q, want d", v)
	}
}
