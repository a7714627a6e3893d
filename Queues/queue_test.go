package Queues

import (
	"errors"
	"testing"
)

func TestArrayQueue_PushPop(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if _, err := q.Pop(); err == nil {
		t.Fatal("pop on empty queue didn't fail")
	} else {
		var e *EmptyQueueError
		if !errors.As(err, &e) {
			t.Fatalf("wrong error type %T", err)
		}
	}
	pushed, popped := 0, 0
	for round := 0; round < 50; round++ {
		for i := 0; i < round+3; i++ {
			q.Push(pushed)
			pushed++
		}
		for i := 0; i < round+1; i++ {
			if v, err := q.Pop(); err != nil {
				t.Fatal(err)
			} else if v != popped {
				t.Fatalf("popped %d, want %d", v, popped)
			}
			popped++
		}
	}
	if want := uint(pushed - popped); q.Size() != want {
		t.Errorf("size is %d, want %d", q.Size(), want)
	}
}

func TestArrayQueue_Order(t *testing.T) {
	q := MakeArrayQueue[int](4)
	for i := 0; i < 3; i++ {
		q.Push(i)
	}
	q.Pop()
	q.Pop()
	for i := 3; i < 20; i++ {
		q.Push(i)
	}
	q.Shrink()
	for want := 2; want < 20; want++ {
		if v, err := q.Pop(); err != nil || v != want {
			t.Fatalf("got %d %v, want %d", v, err, want)
		}
	}
	if !q.Empty() {
		t.Error("queue should be empty")
	}
	q.Push(7)
	q.Clear()
	if q.Size() != 0 || q.Peek() != 0 {
		t.Error("clear left items behind")
	}
}
