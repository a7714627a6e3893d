package Queues

// Queue is a FIFO container. None of the implementations here are safe for concurrent use.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item. Returns *EmptyQueueError when there is none.
	Pop() (T, error)
	// Peek at the oldest item without removing it; zero value when empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular array that grows as needed.
type ArrayQueue[T any] interface {
	Queue[T]
	// Shrink the backing array to fit the current items.
	Shrink()
	// Clear the queue, keeping the backing array.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "queue is empty: cannot pop"
}
